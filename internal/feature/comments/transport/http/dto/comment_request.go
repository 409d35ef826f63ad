// Package dto defines data transfer objects for the comments feature's HTTP transport layer.
package dto

import "cms_backend/internal/feature/comments/domain/entity"

// CommentReq represents the request body for posting a comment.
type CommentReq struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CommentRes represents a comment in responses. Only the author's public
// identity is exposed.
type CommentRes struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	ArticleID uint   `json:"article_id"`
	Author    string `json:"author"`
}

// CommentResFromEntity converts a domain comment into its response shape.
func CommentResFromEntity(c *entity.Comment) CommentRes {
	return CommentRes{
		ID:        c.ID,
		Content:   c.Content,
		ArticleID: c.ArticleID,
		Author:    c.Author.Username,
	}
}
