// Package usecase implements the business logic for comments.
package usecase

import (
	"context"
	"errors"

	"cms_backend/internal/feature/comments/domain/entity"
)

// ErrEmptyContent is returned when a comment is submitted without content.
var ErrEmptyContent = errors.New("comment content must not be empty")

// CommentRepository abstracts the persistence layer for comment entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type CommentRepository interface {
	FindAllByArticle(ctx context.Context, articleID uint) ([]entity.Comment, error)
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	Save(ctx context.Context, comment *entity.Comment) error
	DeleteByID(ctx context.Context, id uint) error
	DeleteAllByArticle(ctx context.Context, articleID uint) error
}

// CommentUsecase provides comment read and management operations.
type CommentUsecase struct {
	comments CommentRepository
}

// NewCommentUsecase creates a new CommentUsecase.
func NewCommentUsecase(comments CommentRepository) *CommentUsecase {
	return &CommentUsecase{comments: comments}
}

// ListByArticle returns an article's comments in posting order, with the
// author row populated for display.
func (u *CommentUsecase) ListByArticle(ctx context.Context, articleID uint) ([]entity.Comment, error) {
	return u.comments.FindAllByArticle(ctx, articleID)
}

// PostComment attaches a new comment by the given author to an article.
func (u *CommentUsecase) PostComment(ctx context.Context, articleID, authorID uint, content string) (*entity.Comment, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	comment := &entity.Comment{
		Content:   content,
		ArticleID: articleID,
		AuthorID:  authorID,
	}
	if err := u.comments.Save(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a single comment by id.
func (u *CommentUsecase) DeleteComment(ctx context.Context, id uint) error {
	return u.comments.DeleteByID(ctx, id)
}
