// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"time"

	"github.com/google/uuid"

	"taskly-be/internal/entities"
	"taskly-be/internal/models"
	"taskly-be/internal/repository"
)

// UserRepo is an in-memory UserRepository keyed by email.
type UserRepo struct {
	Users map[string]*entities.User

	// CreateErr, when set, is returned by Create regardless of state.
	// Lets tests simulate store-level failures such as a unique
	// constraint violation that the pre-check missed.
	CreateErr error
}

func NewUserRepo() *UserRepo {
	return &UserRepo{Users: make(map[string]*entities.User)}
}

func (r *UserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	if r.CreateErr != nil {
		return nil, r.CreateErr
	}
	if _, exists := r.Users[email]; exists {
		return nil, repository.ErrEmailTaken
	}
	user := &entities.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.Users[email] = user
	return user, nil
}

func (r *UserRepo) FindByEmail(email string) (*entities.User, error) {
	user, ok := r.Users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

// TaskRepo is an in-memory TaskRepository with owner scoping. Filtering
// and pagination mirror the SQL store's behavior; sorting is not modeled.
type TaskRepo struct {
	Tasks map[string]*entities.Task

	// LastQuery records the query passed to the most recent List call.
	LastQuery *models.ListTasksQuery

	// Err, when set, is returned by every operation.
	Err error
}

func NewTaskRepo() *TaskRepo {
	return &TaskRepo{Tasks: make(map[string]*entities.Task)}
}

func (r *TaskRepo) Create(task *entities.Task) (*entities.Task, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	created := *task
	created.ID = uuid.New().String()
	created.CreatedAt = time.Now().UTC()
	r.Tasks[created.ID] = &created
	return &created, nil
}

func (r *TaskRepo) FindByID(id, ownerID string) (*entities.Task, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	task, ok := r.Tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	return task, nil
}

func (r *TaskRepo) List(ownerID string, q *models.ListTasksQuery) ([]*entities.Task, int, error) {
	if r.Err != nil {
		return nil, 0, r.Err
	}
	r.LastQuery = q

	matching := []*entities.Task{}
	for _, task := range r.Tasks {
		if task.UserID != ownerID {
			continue
		}
		if q.Status != "" && task.Status != q.Status {
			continue
		}
		if q.Priority != "" && task.Priority != q.Priority {
			continue
		}
		matching = append(matching, task)
	}

	total := len(matching)
	offset := q.Offset()
	if offset > total {
		offset = total
	}
	end := offset + q.Limit
	if end > total {
		end = total
	}
	return matching[offset:end], total, nil
}

func (r *TaskRepo) Update(id, ownerID string, patch *models.UpdateTaskRequest) (*entities.Task, error) {
	task, err := r.FindByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	return task, nil
}

func (r *TaskRepo) Delete(id, ownerID string) error {
	if _, err := r.FindByID(id, ownerID); err != nil {
		return err
	}
	delete(r.Tasks, id)
	return nil
}
