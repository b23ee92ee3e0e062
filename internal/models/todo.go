package models

import "time"

type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoUpdate is a partial update: nil fields keep their stored value.
// Identifier and owner are immutable after creation.
type TodoUpdate struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
