package usecase

import (
	"fmt"

	"inkwell/internal/entity"
	"inkwell/internal/repo/persistent"
	"inkwell/pkg/logger"
	"inkwell/pkg/queue"
)

type InteractionUseCase interface {
	ToggleLike(userID, postID uint) (*entity.LikeResult, error)
	AddComment(userID uint, username string, postID uint, content string) (*entity.Comment, error)
	ListComments(postID uint) ([]*entity.Comment, error)
}

type interactionUseCase struct {
	interactionRepo persistent.InteractionRepository
	postRepo        persistent.PostRepository
	queueClient     *queue.Client
	logger          *logger.Logger
}

func NewInteractionUseCase(
	interactionRepo persistent.InteractionRepository,
	postRepo persistent.PostRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		interactionRepo: interactionRepo,
		postRepo:        postRepo,
		queueClient:     queueClient,
		logger:          logger,
	}
}

// ToggleLike flips the like state for (user, post). The caller states no
// intent; the current row decides. The unique index on likes is the guard
// against two concurrent toggles both inserting.
func (uc *interactionUseCase) ToggleLike(userID, postID uint) (*entity.LikeResult, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, entity.ErrNotFound
	}

	existing, err := uc.interactionRepo.GetLike(userID, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like status: %w", err)
	}

	var liked bool
	var message string
	if existing != nil {
		if err := uc.interactionRepo.DeleteLike(userID, postID); err != nil {
			return nil, fmt.Errorf("failed to unlike post: %w", err)
		}
		liked = false
		message = "Post unliked successfully"
	} else {
		if err := uc.interactionRepo.CreateLike(userID, postID); err != nil {
			// A lost race against another toggle surfaces here.
			return nil, err
		}
		liked = true
		message = "Post liked successfully"

		if uc.queueClient != nil {
			go uc.publishEvent(map[string]interface{}{
				"type":    "post_liked",
				"post_id": postID,
				"user_id": userID,
			})
		}
	}

	totalLikes, err := uc.interactionRepo.CountLikes(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &entity.LikeResult{
		Message:    message,
		Liked:      liked,
		TotalLikes: totalLikes,
	}, nil
}

func (uc *interactionUseCase) AddComment(userID uint, username string, postID uint, content string) (*entity.Comment, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, entity.ErrNotFound
	}

	comment := &entity.Comment{
		Content: content,
		UserID:  userID,
		PostID:  postID,
	}

	if err := uc.interactionRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// The commenter's username is denormalized into the response only.
	comment.Username = username

	if uc.queueClient != nil {
		go uc.publishEvent(map[string]interface{}{
			"type":       "new_comment",
			"post_id":    postID,
			"user_id":    userID,
			"comment_id": comment.ID,
		})
	}

	return comment, nil
}

func (uc *interactionUseCase) ListComments(postID uint) ([]*entity.Comment, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, entity.ErrNotFound
	}

	return uc.interactionRepo.ListComments(postID)
}

func (uc *interactionUseCase) publishEvent(event map[string]interface{}) {
	if err := uc.queueClient.PublishEngagementEvent(event); err != nil {
		uc.logger.Error("Failed to publish engagement event: %v", err)
	}
}
