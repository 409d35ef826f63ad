// Package dto defines data transfer objects for the articles feature's HTTP transport layer.
package dto

import "cms_backend/internal/feature/articles/domain/entity"

// ArticleReq represents the request body for creating or updating an article.
type ArticleReq struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
}

// ArticleRes represents an article in responses.
type ArticleRes struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ArticleResFromEntity converts a domain article into its response shape.
func ArticleResFromEntity(a *entity.Article) ArticleRes {
	return ArticleRes{ID: a.ID, Title: a.Title, Content: a.Content}
}
