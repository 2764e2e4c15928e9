package models

import "taskly-be/internal/entities"

// ListMeta carries pagination metadata for a task list.
type ListMeta struct {
	Total int `json:"total"` // matching rows, ignoring pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"` // ceil(total/limit)
}

// ListTasksResponse represents the response for the task list endpoint
type ListTasksResponse struct {
	Tasks []*entities.Task `json:"tasks"`
	Meta  ListMeta         `json:"meta"`
}
