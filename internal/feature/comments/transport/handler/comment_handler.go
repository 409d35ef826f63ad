// Package handler provides HTTP handlers for the comments feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/feature/comments/domain"
	"cms_backend/internal/feature/comments/domain/entity"
	"cms_backend/internal/feature/comments/transport/http/dto"
	"cms_backend/internal/feature/comments/usecase"
	jwtmw "cms_backend/internal/platform/jwt"
)

// CommentUsecase defines the comment operations the handler depends on.
type CommentUsecase interface {
	ListByArticle(ctx context.Context, articleID uint) ([]entity.Comment, error)
	PostComment(ctx context.Context, articleID, authorID uint, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
}

// CommentHandler handles comment endpoints: public reads, authenticated
// posting, admin deletion.
type CommentHandler struct {
	comments CommentUsecase
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments CommentUsecase) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func parseParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListByArticle returns an article's comments in posting order.
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	articleID, ok := parseParam(c, "id")
	if !ok {
		return
	}
	comments, err := h.comments.ListByArticle(c.Request.Context(), articleID)
	if err != nil {
		slog.Error("list comments failed", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	out := make([]dto.CommentRes, 0, len(comments))
	for i := range comments {
		out = append(out, dto.CommentResFromEntity(&comments[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Post attaches a comment by the authenticated user to an article.
func (h *CommentHandler) Post(c *gin.Context) {
	articleID, ok := parseParam(c, "id")
	if !ok {
		return
	}

	authorID, exists := c.Get(jwtmw.ContextUserID)
	uid, isUint := authorID.(uint)
	if !exists || !isUint {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comment, err := h.comments.PostComment(c.Request.Context(), articleID, uid, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content must not be empty"})
			return
		}
		slog.Error("post comment failed", "error", err, "article_id", articleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	slog.Info("comment posted", "id", comment.ID, "article_id", articleID, "author_id", uid)
	c.JSON(http.StatusCreated, dto.CommentResFromEntity(comment))
}

// Delete removes a single comment. Admin only; the route group enforces it.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}
	if err := h.comments.DeleteComment(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("delete comment failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	c.Status(http.StatusNoContent)
}
