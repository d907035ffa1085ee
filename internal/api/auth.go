package api

import (
	"context"
	"net/http"

	"blogctl/internal/models"
)

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a token and the user record. Persisting
// the token is the session's business, not the client's.
func (c *Client) Login(ctx context.Context, email, password string) Result[LoginData] {
	payload := map[string]string{"email": email, "password": password}
	var env struct {
		Success bool       `json:"success"`
		Data    *LoginData `json:"data"`
		Message string     `json:"message"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/login", payload, &env); err != nil {
		return fail[LoginData](err, "Login failed")
	}
	if !env.Success || env.Data == nil || env.Data.Token == "" {
		msg := env.Message
		if msg == "" {
			msg = "Invalid response from server"
		}
		return failMsg[LoginData](msg)
	}
	return ok(*env.Data)
}

// Register creates an account. The backend signals success with a 201 and no
// interesting body, so the data branch is a generic message.
func (c *Client) Register(ctx context.Context, data models.RegisterData) Result[string] {
	if err := c.sendJSON(ctx, http.MethodPost, "/api/auth/register", data, nil); err != nil {
		return fail[string](err, "Registration failed")
	}
	return ok("Registration successful")
}

// Verify validates the stored token and returns the user it belongs to.
func (c *Client) Verify(ctx context.Context) Result[models.User] {
	var env struct {
		User *models.User `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/auth/verify", nil, &env); err != nil {
		return fail[models.User](err, "Verification failed")
	}
	if env.User == nil {
		return failMsg[models.User]("Verification failed")
	}
	return ok(*env.User)
}
