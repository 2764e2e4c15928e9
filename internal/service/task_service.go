package service

import (
	"taskly-be/internal/entities"
	"taskly-be/internal/models"
	"taskly-be/internal/repository"
)

// TaskService defines the interface for task business logic. Every
// operation is scoped to the calling user's id, taken from the verified
// token, never from the request body.
type TaskService interface {
	CreateTask(ownerID string, req *models.CreateTaskRequest) (*entities.Task, error)
	GetTask(id, ownerID string) (*entities.Task, error)
	ListTasks(ownerID string, q *models.ListTasksQuery) (*models.ListTasksResponse, error)
	UpdateTask(id, ownerID string, req *models.UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(id, ownerID string) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// CreateTask creates a task owned by the given user, applying the Low
// priority and Pending status defaults when the request omits them.
func (s *taskService) CreateTask(ownerID string, req *models.CreateTaskRequest) (*entities.Task, error) {
	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		UserID:      ownerID,
	}
	if task.Priority == "" {
		task.Priority = entities.PriorityLow
	}
	if task.Status == "" {
		task.Status = entities.StatusPending
	}

	return s.taskRepo.Create(task)
}

// GetTask retrieves a single task owned by the given user
func (s *taskService) GetTask(id, ownerID string) (*entities.Task, error) {
	return s.taskRepo.FindByID(id, ownerID)
}

// ListTasks returns one page of the user's tasks with pagination metadata
func (s *taskService) ListTasks(ownerID string, q *models.ListTasksQuery) (*models.ListTasksResponse, error) {
	q.Normalize()

	tasks, total, err := s.taskRepo.List(ownerID, q)
	if err != nil {
		return nil, err
	}

	pages := (total + q.Limit - 1) / q.Limit

	return &models.ListTasksResponse{
		Tasks: tasks,
		Meta: models.ListMeta{
			Total: total,
			Page:  q.Page,
			Limit: q.Limit,
			Pages: pages,
		},
	}, nil
}

// UpdateTask applies a partial update to the user's task. An empty patch
// is rejected before any store access.
func (s *taskService) UpdateTask(id, ownerID string, req *models.UpdateTaskRequest) (*entities.Task, error) {
	if !req.HasUpdates() {
		return nil, ErrNoUpdateFields
	}

	return s.taskRepo.Update(id, ownerID, req)
}

// DeleteTask removes the user's task
func (s *taskService) DeleteTask(id, ownerID string) error {
	return s.taskRepo.Delete(id, ownerID)
}
