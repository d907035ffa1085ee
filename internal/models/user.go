package models

// User roles as reported by the backend.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the identity attached to a session or referenced by posts
// and comments.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user may use the admin dashboard.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RegisterData is the payload of a registration request.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
