// Package entity defines the domain entities for the comments feature.
package entity

import (
	articleentity "cms_backend/internal/feature/articles/domain/entity"
	userentity "cms_backend/internal/feature/users/domain/entity"
)

// Comment represents a reader comment stored in t_comment. A comment always
// belongs to one article and one author; both are referenced by id and the
// author row is joined in for display.
type Comment struct {
	ID        uint   `gorm:"column:com_id;primaryKey"`
	Content   string `gorm:"column:com_content;type:text;not null"`
	ArticleID uint   `gorm:"column:art_id;index;not null"`
	AuthorID  uint   `gorm:"column:usr_id;index;not null"`

	Article articleentity.Article `gorm:"foreignKey:ArticleID;references:ID"`
	Author  userentity.User       `gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName maps the entity onto the legacy t_comment table.
func (Comment) TableName() string { return "t_comment" }

// IsTransient reports whether the comment has not been persisted yet.
func (c *Comment) IsTransient() bool { return c.ID == 0 }
