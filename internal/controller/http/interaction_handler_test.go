package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInteractionUseCase is a mock implementation of usecase.InteractionUseCase
type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) ToggleLike(userID, postID uint) (*entity.LikeResult, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LikeResult), args.Error(1)
}

func (m *MockInteractionUseCase) AddComment(userID uint, username string, postID uint, content string) (*entity.Comment, error) {
	args := m.Called(userID, username, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockInteractionUseCase) ListComments(postID uint) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

var _ usecase.InteractionUseCase = (*MockInteractionUseCase)(nil)

func TestToggleLike_LikeResponse(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(7, "alice", handler.ToggleLike))

	mockUseCase.On("ToggleLike", uint(7), uint(1)).Return(&entity.LikeResult{
		Message:    "Post liked successfully",
		Liked:      true,
		TotalLikes: 3,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post liked successfully", response["message"])
	assert.Equal(t, true, response["liked"])
	assert.Equal(t, float64(3), response["total_likes"])

	mockUseCase.AssertExpectations(t)
}

func TestToggleLike_UnlikeResponse(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(7, "alice", handler.ToggleLike))

	mockUseCase.On("ToggleLike", uint(7), uint(1)).Return(&entity.LikeResult{
		Message:    "Post unliked successfully",
		Liked:      false,
		TotalLikes: 2,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, false, response["liked"])
	assert.Equal(t, float64(2), response["total_likes"])
}

func TestToggleLike_PostNotFound(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(7, "alice", handler.ToggleLike))

	mockUseCase.On("ToggleLike", uint(7), uint(42)).Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/42/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleLike_Conflict(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/like", asUser(7, "alice", handler.ToggleLike))

	mockUseCase.On("ToggleLike", uint(7), uint(1)).Return(nil, entity.ErrAlreadyLiked)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/like", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post already liked", response["error"])
}

func TestAddComment_Success(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comment", asUser(7, "alice", handler.AddComment))

	mockUseCase.On("AddComment", uint(7), "alice", uint(1), "nice").Return(&entity.Comment{
		ID:        3,
		Content:   "nice",
		UserID:    7,
		PostID:    1,
		Username:  "alice",
		CreatedAt: time.Now(),
	}, nil)

	body := `{"content":"nice"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/comment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "nice", response["content"])
	assert.Equal(t, "alice", response["username"])

	mockUseCase.AssertExpectations(t)
}

func TestAddComment_MissingContent(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comment", asUser(7, "alice", handler.AddComment))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/1/comment", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddComment_PostNotFound(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts/:id/comment", asUser(7, "alice", handler.AddComment))

	mockUseCase.On("AddComment", uint(7), "alice", uint(42), "nice").Return(nil, entity.ErrNotFound)

	body := `{"content":"nice"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/posts/42/comment", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListComments_NewestFirst(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/comments", handler.ListComments)

	base := time.Now()
	mockUseCase.On("ListComments", uint(1)).Return([]*entity.Comment{
		{ID: 2, Content: "second", Username: "bob", CreatedAt: base.Add(time.Minute)},
		{ID: 1, Content: "first", Username: "alice", CreatedAt: base},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/1/comments", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, "second", response[0]["content"])
	assert.Equal(t, "first", response[1]["content"])

	mockUseCase.AssertExpectations(t)
}

func TestListComments_PostNotFound(t *testing.T) {
	mockUseCase := new(MockInteractionUseCase)
	handler := NewInteractionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:id/comments", handler.ListComments)

	mockUseCase.On("ListComments", uint(42)).Return(nil, entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/42/comments", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
