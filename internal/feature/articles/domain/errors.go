// Package domain defines domain-level errors for the articles feature.
package domain

import "errors"

// ErrArticleNotFound indicates a lookup matched no article row.
var ErrArticleNotFound = errors.New("article not found")
