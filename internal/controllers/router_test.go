package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"taskly-be/internal/jwt"
	"taskly-be/internal/middleware"
	"taskly-be/internal/mocks"
	"taskly-be/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServer wires the controllers over in-memory repositories, mirroring
// the route setup in main.go (minus rate limiting).
type testServer struct {
	router     *gin.Engine
	userRepo   *mocks.UserRepo
	taskRepo   *mocks.TaskRepo
	jwtService *jwt.JWTService
}

func newTestServer() *testServer {
	userRepo := mocks.NewUserRepo()
	taskRepo := mocks.NewTaskRepo()
	jwtService := jwt.NewJWTService("test-secret-that-is-long-enough", time.Hour)

	authController := NewAuthController(service.NewAuthService(userRepo, jwtService))
	taskController := NewTaskController(service.NewTaskService(taskRepo))

	router := gin.New()

	users := router.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	tasks := router.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware(jwtService))
	{
		tasks.POST("", taskController.CreateTask)
		tasks.GET("", taskController.ListTasks)
		tasks.GET("/:id", taskController.GetTask)
		tasks.PUT("/:id", taskController.UpdateTask)
		tasks.DELETE("/:id", taskController.DeleteTask)
	}

	return &testServer{
		router:     router,
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		jwtService: jwtService,
	}
}

// do sends a JSON request to the test server. A non-empty token is sent as
// a bearer credential.
func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the API and returns its token and id
func (s *testServer) register(t *testing.T, name, email string) (token, userID string) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/users/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

// createTask creates a task through the API and returns its id
func (s *testServer) createTask(t *testing.T, token string, body gin.H) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/tasks", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var task struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	return task.ID
}
