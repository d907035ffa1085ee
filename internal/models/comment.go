package models

import "time"

// Comment is a flat (non-threaded) comment on a post.
type Comment struct {
	ID        string    `json:"_id"`
	BlogID    string    `json:"blog"`
	Author    *User     `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
