package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskly-be/internal/models"
	"taskly-be/internal/repository"
	"taskly-be/internal/service"
)

type TaskController struct {
	taskService service.TaskService
}

func NewTaskController(taskService service.TaskService) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// CreateTask handles POST /tasks
func (tc *TaskController) CreateTask(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	task, err := tc.taskService.CreateTask(ownerID, &req)
	if err != nil {
		log.Printf("ERROR: create task failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong",
		})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks handles GET /tasks with optional status/priority filters,
// sorting, and pagination
func (tc *TaskController) ListTasks(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var q models.ListTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": bindingDetails(err),
		})
		return
	}

	response, err := tc.taskService.ListTasks(ownerID, &q)
	if err != nil {
		log.Printf("ERROR: list tasks failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTask handles GET /tasks/:id
func (tc *TaskController) GetTask(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if uuid.Validate(id) != nil {
		taskNotFound(c)
		return
	}

	task, err := tc.taskService.GetTask(id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			taskNotFound(c)
			return
		}
		log.Printf("ERROR: get task failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong",
		})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask handles PUT /tasks/:id with a partial update body
func (tc *TaskController) UpdateTask(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	id := c.Param("id")
	if uuid.Validate(id) != nil {
		taskNotFound(c)
		return
	}

	task, err := tc.taskService.UpdateTask(id, ownerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdateFields):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": service.ErrNoUpdateFields.Error(),
			})
		case errors.Is(err, repository.ErrTaskNotFound):
			taskNotFound(c)
		default:
			log.Printf("ERROR: update task failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Something went wrong",
			})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
func (tc *TaskController) DeleteTask(c *gin.Context) {
	ownerID, ok := callerID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if uuid.Validate(id) != nil {
		taskNotFound(c)
		return
	}

	if err := tc.taskService.DeleteTask(id, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			taskNotFound(c)
			return
		}
		log.Printf("ERROR: delete task failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Something went wrong",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
