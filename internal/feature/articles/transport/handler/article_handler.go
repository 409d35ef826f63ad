// Package handler provides HTTP handlers for the articles feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/feature/articles/domain"
	"cms_backend/internal/feature/articles/domain/entity"
	"cms_backend/internal/feature/articles/transport/http/dto"
	"cms_backend/internal/feature/articles/usecase"
)

// ArticleUsecase defines the article operations the handler depends on.
type ArticleUsecase interface {
	ListArticles(ctx context.Context) ([]entity.Article, error)
	GetArticle(ctx context.Context, id uint) (*entity.Article, error)
	CreateArticle(ctx context.Context, title, content string) (*entity.Article, error)
	UpdateArticle(ctx context.Context, id uint, title, content string) (*entity.Article, error)
	DeleteArticle(ctx context.Context, id uint) error
}

// ArticleHandler handles article endpoints: public reads, admin writes.
type ArticleHandler struct {
	articles ArticleUsecase
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List returns all articles, newest first.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.ListArticles(c.Request.Context())
	if err != nil {
		slog.Error("list articles failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}
	out := make([]dto.ArticleRes, 0, len(articles))
	for i := range articles {
		out = append(out, dto.ArticleResFromEntity(&articles[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single article by id.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, err := h.articles.GetArticle(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticleResFromEntity(article))
}

// Create publishes a new article.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	article, err := h.articles.CreateArticle(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("article created", "id", article.ID, "title", article.Title)
	c.JSON(http.StatusCreated, dto.ArticleResFromEntity(article))
}

// Update overwrites an existing article.
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ArticleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	article, err := h.articles.UpdateArticle(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ArticleResFromEntity(article))
}

// Delete removes an article and its comments.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.articles.DeleteArticle(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("article deleted", "id", id)
	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	case errors.Is(err, usecase.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
	default:
		slog.Error("article operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
