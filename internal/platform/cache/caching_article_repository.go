// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cms_backend/internal/feature/articles/domain/entity"
	"cms_backend/internal/feature/articles/usecase"
)

// CachingArticleRepository decorates an ArticleRepository with Redis caching
// on the read path. Writes pass through and invalidate the affected keys.
// Only article content is cached; the user repository is deliberately never
// wrapped, since credential lookups must always read current rows.
type CachingArticleRepository struct {
	inner     usecase.ArticleRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingArticleRepository decorates an ArticleRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "articles".
func NewCachingArticleRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ArticleRepository, namespace string) *CachingArticleRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "articles"
	}
	return &CachingArticleRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.ArticleRepository = (*CachingArticleRepository)(nil)

// FindAll retrieves all articles, checking cache first then falling back to
// the database.
func (c *CachingArticleRepository) FindAll(ctx context.Context) ([]entity.Article, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Article
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID retrieves one article, checking cache first.
func (c *CachingArticleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.itemKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Article
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Save writes through to the underlying repository and invalidates the
// affected cache entries.
func (c *CachingArticleRepository) Save(ctx context.Context, a *entity.Article) error {
	if err := c.inner.Save(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx, a.ID)
	return nil
}

// DeleteByID deletes from the underlying repository and invalidates the
// affected cache entries.
func (c *CachingArticleRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := c.inner.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// invalidate drops the list key and the item key. Best effort: a failed
// delete only means a stale read until the TTL runs out.
func (c *CachingArticleRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(), c.itemKey(id)).Err()
}

func (c *CachingArticleRepository) listKey() string {
	return fmt.Sprintf("%s:all", c.namespace)
}

func (c *CachingArticleRepository) itemKey(id uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, id)
}
