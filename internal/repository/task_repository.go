package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"taskly-be/internal/entities"
	"taskly-be/internal/models"
)

// TaskRepository defines the interface for task database operations.
// Every operation except Create takes the owning user's id and only
// touches rows belonging to that user.
type TaskRepository interface {
	Create(task *entities.Task) (*entities.Task, error)
	FindByID(id, ownerID string) (*entities.Task, error)
	List(ownerID string, q *models.ListTasksQuery) ([]*entities.Task, int, error)
	Update(id, ownerID string, patch *models.UpdateTaskRequest) (*entities.Task, error)
	Delete(id, ownerID string) error
}

type taskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create inserts a new task into the database
func (r *taskRepository) Create(task *entities.Task) (*entities.Task, error) {
	query := `
		INSERT INTO tasks (title, description, priority, status, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, description, priority, status, user_id, created_at
	`

	var created entities.Task
	err := r.db.QueryRow(query, task.Title, task.Description, task.Priority, task.Status, task.UserID).Scan(
		&created.ID,
		&created.Title,
		&created.Description,
		&created.Priority,
		&created.Status,
		&created.UserID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &created, nil
}

// FindByID finds a task by id, scoped to its owner
func (r *taskRepository) FindByID(id, ownerID string) (*entities.Task, error) {
	query := `
		SELECT id, title, description, priority, status, user_id, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task entities.Task
	err := r.db.QueryRow(query, id, ownerID).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return &task, nil
}

// List returns one page of the owner's tasks plus the total number of
// matching rows ignoring pagination.
func (r *taskRepository) List(ownerID string, q *models.ListTasksQuery) ([]*entities.Task, int, error) {
	countQuery, pageQuery, countArgs, pageArgs := buildTaskListQuery(ownerID, q)

	var total int
	if err := r.db.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	rows, err := r.db.Query(pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*entities.Task{}
	for rows.Next() {
		var task entities.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Priority,
			&task.Status,
			&task.UserID,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, total, nil
}

// Update applies the provided fields to the owner's task and returns the
// updated row. Fields absent from the patch are left untouched.
func (r *taskRepository) Update(id, ownerID string, patch *models.UpdateTaskRequest) (*entities.Task, error) {
	set := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Priority != nil {
		appendSet("priority", *patch.Priority)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}

	// Callers validate that at least one field is present; an empty patch
	// degenerates to a plain read.
	if len(set) == 0 {
		return r.FindByID(id, ownerID)
	}

	args = append(args, id, ownerID)
	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, title, description, priority, status, user_id, created_at
	`, strings.Join(set, ", "), len(args)-1, len(args))

	var task entities.Task
	err := r.db.QueryRow(query, args...).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &task, nil
}

// Delete removes the owner's task. Deleting a task that does not exist or
// belongs to someone else reports ErrTaskNotFound.
func (r *taskRepository) Delete(id, ownerID string) error {
	result, err := r.db.Exec(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
