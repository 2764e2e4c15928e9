package models

// CreateTaskRequest represents the request body for creating a task.
// Priority and Status are optional; the service applies Low/Pending defaults.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status      string  `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Done"`
}

// UpdateTaskRequest represents the request body for a partial task update.
// All fields are optional, but at least one must be present.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitnil,min=1,max=200"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitnil,oneof=Low Medium High"`
	Status      *string `json:"status" binding:"omitnil,oneof=Pending 'In Progress' Done"`
}

// HasUpdates reports whether the request carries at least one field.
func (r *UpdateTaskRequest) HasUpdates() bool {
	return r.Title != nil || r.Description != nil || r.Priority != nil || r.Status != nil
}

// ListTasksQuery represents the query parameters for listing tasks.
// Status and Priority are exact-match filters; values outside the known
// enums simply match nothing. Sort is a comma-separated field list, each
// field optionally prefixed with '-' for descending order.
type ListTasksQuery struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Sort     string `form:"sort"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

// Pagination bounds, enforced server-side regardless of what the client asks for.
const (
	MaxPageLimit     = 100
	DefaultPageLimit = 10
)

// Normalize clamps page and limit into their allowed bounds. Out-of-range
// values are silently adjusted rather than rejected.
func (q *ListTasksQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 1
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
}

// Offset returns the number of rows to skip for the current page.
func (q *ListTasksQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
