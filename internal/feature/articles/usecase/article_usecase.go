// Package usecase implements the business logic for article management.
package usecase

import (
	"context"
	"errors"

	"cms_backend/internal/feature/articles/domain/entity"
)

// ErrEmptyTitle is returned when an article is submitted without a title.
var ErrEmptyTitle = errors.New("article title must not be empty")

// ArticleRepository abstracts the persistence layer for article entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ArticleRepository interface {
	FindAll(ctx context.Context) ([]entity.Article, error)
	FindByID(ctx context.Context, id uint) (*entity.Article, error)
	Save(ctx context.Context, article *entity.Article) error
	DeleteByID(ctx context.Context, id uint) error
}

// CommentPurger removes the comments attached to an article. The comments
// feature provides it; articles only need this single operation when an
// article is deleted.
type CommentPurger interface {
	DeleteAllByArticle(ctx context.Context, articleID uint) error
}

// ArticleUsecase provides article read and management operations.
type ArticleUsecase struct {
	articles ArticleRepository
	comments CommentPurger
}

// NewArticleUsecase creates a new ArticleUsecase.
func NewArticleUsecase(articles ArticleRepository, comments CommentPurger) *ArticleUsecase {
	return &ArticleUsecase{articles: articles, comments: comments}
}

// ListArticles returns all articles, newest first.
func (u *ArticleUsecase) ListArticles(ctx context.Context) ([]entity.Article, error) {
	return u.articles.FindAll(ctx)
}

// GetArticle returns a single article by id.
func (u *ArticleUsecase) GetArticle(ctx context.Context, id uint) (*entity.Article, error) {
	return u.articles.FindByID(ctx, id)
}

// CreateArticle persists a new article and returns it with its assigned id.
func (u *ArticleUsecase) CreateArticle(ctx context.Context, title, content string) (*entity.Article, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	article := &entity.Article{Title: title, Content: content}
	if err := u.articles.Save(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle overwrites an existing article's title and content.
func (u *ArticleUsecase) UpdateArticle(ctx context.Context, id uint, title, content string) (*entity.Article, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	article, err := u.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	article.Title = title
	article.Content = content
	if err := u.articles.Save(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle removes an article together with its comments.
func (u *ArticleUsecase) DeleteArticle(ctx context.Context, id uint) error {
	if err := u.comments.DeleteAllByArticle(ctx, id); err != nil {
		return err
	}
	return u.articles.DeleteByID(ctx, id)
}
