// Package entity defines the domain entities for the articles feature.
package entity

// Article represents a published piece of content stored in t_article.
// An ID of zero marks a transient article not yet persisted.
type Article struct {
	ID      uint   `gorm:"column:art_id;primaryKey"`
	Title   string `gorm:"column:art_title;size:100;not null"`
	Content string `gorm:"column:art_content;type:text;not null"`
}

// TableName maps the entity onto the legacy t_article table.
func (Article) TableName() string { return "t_article" }

// IsTransient reports whether the article has not been persisted yet.
func (a *Article) IsTransient() bool { return a.ID == 0 }
