// Package domain defines domain-level errors for the comments feature.
package domain

import "errors"

// ErrCommentNotFound indicates a lookup matched no comment row.
var ErrCommentNotFound = errors.New("comment not found")
