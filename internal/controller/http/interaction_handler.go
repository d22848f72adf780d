package http

import (
	"errors"
	"net/http"

	"inkwell/internal/entity"
	"inkwell/internal/usecase"
	"inkwell/pkg/logger"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ToggleLike godoc
// @Summary      Toggle like on a post
// @Description  Likes the post if not yet liked, removes the like otherwise.
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.LikeResult
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")

	result, err := h.interactionUseCase.ToggleLike(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, entity.ErrAlreadyLiked):
			// Lost the toggle race: another request inserted the like first.
			c.JSON(http.StatusConflict, gin.H{"error": "Post already liked"})
		default:
			h.logger.Error("Failed to toggle like: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comment [post]
func (h *InteractionHandler) AddComment(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	userID := c.GetUint("user_id")
	username := c.GetString("username")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.interactionUseCase.AddComment(userID, username, postID, req.Content)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to add comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary      List comments on a post
// @Description  Comments are returned newest first.
// @Tags         interactions
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {array}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *InteractionHandler) ListComments(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}

	comments, err := h.interactionUseCase.ListComments(postID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to list comments: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}
