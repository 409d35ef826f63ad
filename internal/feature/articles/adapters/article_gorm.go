// Package adapters provides the repository implementation for the articles feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cms_backend/internal/feature/articles/domain"
	"cms_backend/internal/feature/articles/domain/entity"
	"cms_backend/internal/feature/articles/usecase"
	"cms_backend/internal/platform/dao"
)

// articleGorm is the GORM implementation of the article repository.
type articleGorm struct {
	*dao.DAO
}

var _ usecase.ArticleRepository = (*articleGorm)(nil)

// NewArticleGorm creates an article repository over the given base DAO.
func NewArticleGorm(d *dao.DAO) *articleGorm {
	return &articleGorm{DAO: d}
}

// FindAll returns every article, newest first.
func (r *articleGorm) FindAll(ctx context.Context) ([]entity.Article, error) {
	var articles []entity.Article
	if err := r.Conn(ctx).Order("art_id DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByID retrieves an article by primary key.
func (r *articleGorm) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	var a entity.Article
	if err := r.Conn(ctx).Where("art_id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Save upserts by presence of id, assigning the id in place on insert.
func (r *articleGorm) Save(ctx context.Context, a *entity.Article) error {
	if a.IsTransient() {
		return r.Conn(ctx).Create(a).Error
	}
	res := r.Conn(ctx).Model(&entity.Article{}).
		Where("art_id = ?", a.ID).
		Updates(map[string]any{
			"art_title":   a.Title,
			"art_content": a.Content,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// DeleteByID removes an article; absent ids are a no-op.
func (r *articleGorm) DeleteByID(ctx context.Context, id uint) error {
	return r.Conn(ctx).Where("art_id = ?", id).Delete(&entity.Article{}).Error
}
