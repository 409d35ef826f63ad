// Package adapters provides the repository implementation for the comments feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	articleusecase "cms_backend/internal/feature/articles/usecase"
	"cms_backend/internal/feature/comments/domain"
	"cms_backend/internal/feature/comments/domain/entity"
	"cms_backend/internal/feature/comments/usecase"
	"cms_backend/internal/platform/dao"
)

// commentGorm is the GORM implementation of the comment repository.
type commentGorm struct {
	*dao.DAO
}

var (
	_ usecase.CommentRepository    = (*commentGorm)(nil)
	_ articleusecase.CommentPurger = (*commentGorm)(nil)
)

// NewCommentGorm creates a comment repository over the given base DAO.
func NewCommentGorm(d *dao.DAO) *commentGorm {
	return &commentGorm{DAO: d}
}

// FindAllByArticle returns an article's comments in posting order with the
// author row preloaded.
func (r *commentGorm) FindAllByArticle(ctx context.Context, articleID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.Conn(ctx).
		Preload("Author").
		Where("art_id = ?", articleID).
		Order("com_id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID retrieves a comment by primary key.
func (r *commentGorm) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var c entity.Comment
	if err := r.Conn(ctx).Preload("Author").Where("com_id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Save upserts by presence of id, assigning the id in place on insert.
func (r *commentGorm) Save(ctx context.Context, c *entity.Comment) error {
	if c.IsTransient() {
		return r.Conn(ctx).Omit("Author", "Article").Create(c).Error
	}
	res := r.Conn(ctx).Model(&entity.Comment{}).
		Where("com_id = ?", c.ID).
		Update("com_content", c.Content)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// DeleteByID removes a comment; absent ids are a no-op.
func (r *commentGorm) DeleteByID(ctx context.Context, id uint) error {
	return r.Conn(ctx).Where("com_id = ?", id).Delete(&entity.Comment{}).Error
}

// DeleteAllByArticle removes every comment attached to an article.
// Used when the article itself is deleted.
func (r *commentGorm) DeleteAllByArticle(ctx context.Context, articleID uint) error {
	return r.Conn(ctx).Where("art_id = ?", articleID).Delete(&entity.Comment{}).Error
}
