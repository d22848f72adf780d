package usecase

import (
	"testing"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) GetLike(userID, postID uint) (*entity.Like, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockInteractionRepository) CreateLike(userID, postID uint) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockInteractionRepository) DeleteLike(userID, postID uint) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockInteractionRepository) CountLikes(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) CreateComment(comment *entity.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockInteractionRepository) ListComments(postID uint) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

func TestToggleLike_Like(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	mockPosts.On("Exists", uint(1)).Return(true, nil)
	mockInteractions.On("GetLike", uint(7), uint(1)).Return(nil, nil)
	mockInteractions.On("CreateLike", uint(7), uint(1)).Return(nil)
	mockInteractions.On("CountLikes", uint(1)).Return(int64(1), nil)

	result, err := uc.ToggleLike(7, 1)

	assert.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, int64(1), result.TotalLikes)
	assert.Equal(t, "Post liked successfully", result.Message)

	mockInteractions.AssertExpectations(t)
	mockPosts.AssertExpectations(t)
}

func TestToggleLike_Unlike(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	existing := &entity.Like{ID: 5, UserID: 7, PostID: 1}

	mockPosts.On("Exists", uint(1)).Return(true, nil)
	mockInteractions.On("GetLike", uint(7), uint(1)).Return(existing, nil)
	mockInteractions.On("DeleteLike", uint(7), uint(1)).Return(nil)
	mockInteractions.On("CountLikes", uint(1)).Return(int64(0), nil)

	result, err := uc.ToggleLike(7, 1)

	assert.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, int64(0), result.TotalLikes)
	assert.Equal(t, "Post unliked successfully", result.Message)

	mockInteractions.AssertExpectations(t)
}

// Toggling twice returns to the original state with the original count.
func TestToggleLike_TwiceRestoresState(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	like := &entity.Like{ID: 5, UserID: 7, PostID: 1}

	mockPosts.On("Exists", uint(1)).Return(true, nil).Twice()
	mockInteractions.On("GetLike", uint(7), uint(1)).Return(nil, nil).Once()
	mockInteractions.On("CreateLike", uint(7), uint(1)).Return(nil).Once()
	mockInteractions.On("CountLikes", uint(1)).Return(int64(1), nil).Once()
	mockInteractions.On("GetLike", uint(7), uint(1)).Return(like, nil).Once()
	mockInteractions.On("DeleteLike", uint(7), uint(1)).Return(nil).Once()
	mockInteractions.On("CountLikes", uint(1)).Return(int64(0), nil).Once()

	first, err := uc.ToggleLike(7, 1)
	assert.NoError(t, err)
	assert.True(t, first.Liked)

	second, err := uc.ToggleLike(7, 1)
	assert.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Equal(t, int64(0), second.TotalLikes)

	mockInteractions.AssertExpectations(t)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	mockPosts.On("Exists", uint(42)).Return(false, nil)

	_, err := uc.ToggleLike(7, 42)

	assert.ErrorIs(t, err, entity.ErrNotFound)
	mockInteractions.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
}

// A concurrent toggle that wins the insert race leaves this one facing the
// unique constraint; the outcome is a well-defined conflict, not a crash.
func TestToggleLike_ConcurrentInsertConflict(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	mockPosts.On("Exists", uint(1)).Return(true, nil)
	mockInteractions.On("GetLike", uint(7), uint(1)).Return(nil, nil)
	mockInteractions.On("CreateLike", uint(7), uint(1)).Return(entity.ErrAlreadyLiked)

	_, err := uc.ToggleLike(7, 1)

	assert.ErrorIs(t, err, entity.ErrAlreadyLiked)
}

func TestAddComment_SetsUsername(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	mockPosts.On("Exists", uint(1)).Return(true, nil)
	mockInteractions.On("CreateComment", mock.AnythingOfType("*entity.Comment")).Run(func(args mock.Arguments) {
		comment := args.Get(0).(*entity.Comment)
		comment.ID = 3
		comment.CreatedAt = time.Now()
	}).Return(nil)

	comment, err := uc.AddComment(7, "alice", 1, "nice")

	assert.NoError(t, err)
	assert.Equal(t, uint(3), comment.ID)
	assert.Equal(t, "nice", comment.Content)
	assert.Equal(t, "alice", comment.Username)
	assert.Equal(t, uint(7), comment.UserID)
	assert.Equal(t, uint(1), comment.PostID)

	mockInteractions.AssertExpectations(t)
}

func TestAddComment_PostNotFound(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	mockPosts.On("Exists", uint(42)).Return(false, nil)

	_, err := uc.AddComment(7, "alice", 42, "nice")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	mockInteractions.AssertNotCalled(t, "CreateComment", mock.Anything)
}

func TestListComments_PostNotFound(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	mockPosts.On("Exists", uint(42)).Return(false, nil)

	_, err := uc.ListComments(42)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListComments_PreservesRepositoryOrder(t *testing.T) {
	mockInteractions := new(MockInteractionRepository)
	mockPosts := new(MockPostRepository)
	uc := NewInteractionUseCase(mockInteractions, mockPosts, nil, logger.New())

	base := time.Now()
	newestFirst := []*entity.Comment{
		{ID: 3, Content: "third", CreatedAt: base.Add(2 * time.Minute)},
		{ID: 2, Content: "second", CreatedAt: base.Add(time.Minute)},
		{ID: 1, Content: "first", CreatedAt: base},
	}

	mockPosts.On("Exists", uint(1)).Return(true, nil)
	mockInteractions.On("ListComments", uint(1)).Return(newestFirst, nil)

	comments, err := uc.ListComments(1)

	assert.NoError(t, err)
	assert.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Content)
	assert.Equal(t, "first", comments[2].Content)
}
