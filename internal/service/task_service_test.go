package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-be/internal/entities"
	"taskly-be/internal/mocks"
	"taskly-be/internal/models"
	"taskly-be/internal/repository"
)

func TestCreateTask(t *testing.T) {
	ownerID := uuid.New().String()

	t.Run("applies Low and Pending defaults", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())

		task, err := svc.CreateTask(ownerID, &models.CreateTaskRequest{Title: "X"})
		require.NoError(t, err)

		assert.Equal(t, entities.PriorityLow, task.Priority)
		assert.Equal(t, entities.StatusPending, task.Status)
		assert.Equal(t, ownerID, task.UserID)
		assert.Nil(t, task.Description)
	})

	t.Run("keeps explicit priority and status", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())
		desc := "quarterly report"

		task, err := svc.CreateTask(ownerID, &models.CreateTaskRequest{
			Title:       "Write report",
			Description: &desc,
			Priority:    entities.PriorityHigh,
			Status:      entities.StatusInProgress,
		})
		require.NoError(t, err)

		assert.Equal(t, entities.PriorityHigh, task.Priority)
		assert.Equal(t, entities.StatusInProgress, task.Status)
		require.NotNil(t, task.Description)
		assert.Equal(t, desc, *task.Description)
	})
}

func TestListTasks(t *testing.T) {
	ownerID := uuid.New().String()
	otherID := uuid.New().String()

	seed := func(t *testing.T, repo *mocks.TaskRepo, owner string, n int) {
		svc := NewTaskService(repo)
		for i := 0; i < n; i++ {
			_, err := svc.CreateTask(owner, &models.CreateTaskRequest{Title: "task"})
			require.NoError(t, err)
		}
	}

	t.Run("pagination metadata", func(t *testing.T) {
		repo := mocks.NewTaskRepo()
		seed(t, repo, ownerID, 3)
		svc := NewTaskService(repo)

		resp, err := svc.ListTasks(ownerID, &models.ListTasksQuery{Page: 1, Limit: 2})
		require.NoError(t, err)

		assert.Len(t, resp.Tasks, 2)
		assert.Equal(t, 3, resp.Meta.Total)
		assert.Equal(t, 1, resp.Meta.Page)
		assert.Equal(t, 2, resp.Meta.Limit)
		assert.Equal(t, 2, resp.Meta.Pages) // ceil(3/2)
	})

	t.Run("normalizes out-of-range pagination before hitting the store", func(t *testing.T) {
		repo := mocks.NewTaskRepo()
		seed(t, repo, ownerID, 1)
		svc := NewTaskService(repo)

		resp, err := svc.ListTasks(ownerID, &models.ListTasksQuery{Page: -1, Limit: 1000})
		require.NoError(t, err)

		assert.Equal(t, 1, repo.LastQuery.Page)
		assert.Equal(t, models.MaxPageLimit, repo.LastQuery.Limit)
		assert.Equal(t, 1, resp.Meta.Page)
		assert.Equal(t, models.MaxPageLimit, resp.Meta.Limit)
	})

	t.Run("only the owner's tasks are counted", func(t *testing.T) {
		repo := mocks.NewTaskRepo()
		seed(t, repo, ownerID, 2)
		seed(t, repo, otherID, 5)
		svc := NewTaskService(repo)

		resp, err := svc.ListTasks(ownerID, &models.ListTasksQuery{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Meta.Total)
		for _, task := range resp.Tasks {
			assert.Equal(t, ownerID, task.UserID)
		}
	})

	t.Run("zero matching tasks yields zero pages", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())

		resp, err := svc.ListTasks(ownerID, &models.ListTasksQuery{Page: 1, Limit: 10})
		require.NoError(t, err)

		assert.Empty(t, resp.Tasks)
		assert.Equal(t, 0, resp.Meta.Total)
		assert.Equal(t, 0, resp.Meta.Pages)
	})
}

func TestUpdateTask(t *testing.T) {
	ownerID := uuid.New().String()

	t.Run("empty patch is rejected before any store access", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())

		_, err := svc.UpdateTask(uuid.New().String(), ownerID, &models.UpdateTaskRequest{})
		assert.ErrorIs(t, err, ErrNoUpdateFields)
	})

	t.Run("applies only provided fields", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())
		created, err := svc.CreateTask(ownerID, &models.CreateTaskRequest{Title: "X"})
		require.NoError(t, err)

		status := entities.StatusDone
		updated, err := svc.UpdateTask(created.ID, ownerID, &models.UpdateTaskRequest{Status: &status})
		require.NoError(t, err)

		assert.Equal(t, entities.StatusDone, updated.Status)
		assert.Equal(t, "X", updated.Title)
		assert.Equal(t, entities.PriorityLow, updated.Priority)
	})

	t.Run("another user's task is not found", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())
		created, err := svc.CreateTask(ownerID, &models.CreateTaskRequest{Title: "X"})
		require.NoError(t, err)

		title := "hijacked"
		_, err = svc.UpdateTask(created.ID, uuid.New().String(), &models.UpdateTaskRequest{Title: &title})
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	ownerID := uuid.New().String()

	t.Run("removes the owner's task", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())
		created, err := svc.CreateTask(ownerID, &models.CreateTaskRequest{Title: "X"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTask(created.ID, ownerID))

		_, err = svc.GetTask(created.ID, ownerID)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})

	t.Run("nonexistent and not-owned tasks are both not found", func(t *testing.T) {
		svc := NewTaskService(mocks.NewTaskRepo())
		created, err := svc.CreateTask(ownerID, &models.CreateTaskRequest{Title: "X"})
		require.NoError(t, err)

		assert.ErrorIs(t, svc.DeleteTask(uuid.New().String(), ownerID), repository.ErrTaskNotFound)
		assert.ErrorIs(t, svc.DeleteTask(created.ID, uuid.New().String()), repository.ErrTaskNotFound)
	})
}
