package dto

import "github.com/yuzu875641/phpbbs/internal/core/domain"

// SubmitRequest is the JSON body of the background (fetch) submit path.
// Every field is optional on the wire; missing values default to empty, and
// an empty required field turns the action into a soft no-op.
type SubmitRequest struct {
	Username   string `json:"username"`
	Seed       string `json:"seed"`
	Message    string `json:"message"`
	RememberMe bool   `json:"remember_me"`
}

// BoardResponse is the refreshed board state returned after a background
// submit. Username and seed are echoed back so the client can keep its form
// in sync. Error carries a visible banner when a store call failed; the rest
// of the snapshot is still best-effort.
type BoardResponse struct {
	Posts    []domain.Post `json:"posts"`
	Topic    string        `json:"topic"`
	Username string        `json:"username"`
	Seed     string        `json:"seed"`
	Error    string        `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
