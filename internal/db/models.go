package db

import (
	"database/sql"
	"time"
)

// Task represents a single to-do item in the task file
type Task struct {
	ID          int
	UUID        string
	Name        string
	Due         sql.NullString
	Priority    int
	CreatedAt   time.Time
	CompletedAt sql.NullTime
}

// IsComplete reports whether the task has a completion timestamp
func (t Task) IsComplete() bool {
	return t.CompletedAt.Valid
}

// AgeDays returns the number of whole days since the task was created
func (t Task) AgeDays(now time.Time) int {
	return int(now.Sub(t.CreatedAt).Hours() / 24)
}

// DueString returns the due date, or "-" when the task has none
func (t Task) DueString() string {
	if !t.Due.Valid {
		return "-"
	}
	return t.Due.String
}

// NewNullString creates a sql.NullString from a string
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
