package entities

import "time"

// Task priority levels
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Task statuses
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Task represents a task entity in the database
type Task struct {
	ID          string    `json:"id"` // UUID
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"` // Pointer allows nil (no description)
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	UserID      string    `json:"user_id"` // Owning user, UUID
	CreatedAt   time.Time `json:"created_at"`
}
