package usecase

import (
	"fmt"
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"
	"inkwell/pkg/queue"
)

type PostUseCase interface {
	CreatePost(authorID uint, title, content string) (*entity.PostDetail, error)
	ListPosts(skip, limit int) ([]*entity.PostDetail, error)
	GetPost(postID uint) (*entity.PostDetail, error)
	UpdatePost(postID, userID uint, title, content *string) (*entity.PostDetail, error)
	DeletePost(postID, userID uint) (string, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *postUseCase) CreatePost(authorID uint, title, content string) (*entity.PostDetail, error) {
	post := &entity.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if uc.queueClient != nil {
		go uc.publishEvent(map[string]interface{}{
			"type":      "new_post",
			"post_id":   post.ID,
			"author_id": post.AuthorID,
		})
	}

	// A fresh post has no dependents yet, so counts are zero by definition.
	return &entity.PostDetail{Post: *post}, nil
}

func (uc *postUseCase) ListPosts(skip, limit int) ([]*entity.PostDetail, error) {
	return uc.postRepo.ListDetails(skip, limit)
}

func (uc *postUseCase) GetPost(postID uint) (*entity.PostDetail, error) {
	return uc.postRepo.GetDetail(postID)
}

// UpdatePost applies only the fields present in the request. A nil field is
// left untouched, which is how partial updates differ from replacement.
func (uc *postUseCase) UpdatePost(postID, userID uint, title, content *string) (*entity.PostDetail, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, entity.ErrForbidden
	}

	if title != nil {
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}
	post.UpdatedAt = time.Now()

	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	// Counts are recomputed by the detail query, never carried over.
	return uc.postRepo.GetDetail(postID)
}

func (uc *postUseCase) DeletePost(postID, userID uint) (string, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return "", err
	}

	if post.AuthorID != userID {
		return "", entity.ErrForbidden
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		return "", fmt.Errorf("failed to delete post: %w", err)
	}

	return post.Title, nil
}

func (uc *postUseCase) publishEvent(event map[string]interface{}) {
	if err := uc.queueClient.PublishEngagementEvent(event); err != nil {
		uc.logger.Error("Failed to publish engagement event: %v", err)
	}
}
