package domain

import "time"

// Post is a single board message. Posts are append-only: they are created by
// the post command and removed only by the board-wide /clear wipe. ID and
// CreatedAt are assigned by the store.
type Post struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
