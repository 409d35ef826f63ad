package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms_backend/internal/feature/comments/domain"
	"cms_backend/internal/feature/comments/domain/entity"
)

// mockCommentRepository is a mock implementation of the CommentRepository interface.
type mockCommentRepository struct {
	FindAllByArticleFunc   func(ctx context.Context, articleID uint) ([]entity.Comment, error)
	FindByIDFunc           func(ctx context.Context, id uint) (*entity.Comment, error)
	SaveFunc               func(ctx context.Context, comment *entity.Comment) error
	DeleteByIDFunc         func(ctx context.Context, id uint) error
	DeleteAllByArticleFunc func(ctx context.Context, articleID uint) error
}

func (m *mockCommentRepository) FindAllByArticle(ctx context.Context, articleID uint) ([]entity.Comment, error) {
	if m.FindAllByArticleFunc != nil {
		return m.FindAllByArticleFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCommentNotFound
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *entity.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteAllByArticle(ctx context.Context, articleID uint) error {
	if m.DeleteAllByArticleFunc != nil {
		return m.DeleteAllByArticleFunc(ctx, articleID)
	}
	return nil
}

func TestCommentUsecase_PostComment(t *testing.T) {
	t.Run("binds author and article", func(t *testing.T) {
		var saved *entity.Comment
		repo := &mockCommentRepository{
			SaveFunc: func(ctx context.Context, comment *entity.Comment) error {
				saved = comment
				comment.ID = 11
				return nil
			},
		}
		uc := NewCommentUsecase(repo)

		c, err := uc.PostComment(context.Background(), 3, 7, "nice post")

		require.NoError(t, err)
		assert.Equal(t, uint(11), c.ID)
		require.NotNil(t, saved)
		assert.Equal(t, uint(3), saved.ArticleID)
		assert.Equal(t, uint(7), saved.AuthorID)
		assert.Equal(t, "nice post", saved.Content)
	})

	t.Run("empty content", func(t *testing.T) {
		uc := NewCommentUsecase(&mockCommentRepository{})

		_, err := uc.PostComment(context.Background(), 3, 7, "")

		assert.ErrorIs(t, err, ErrEmptyContent)
	})
}

func TestCommentUsecase_ListByArticle(t *testing.T) {
	want := []entity.Comment{
		{ID: 1, Content: "first", ArticleID: 3},
		{ID: 2, Content: "second", ArticleID: 3},
	}
	repo := &mockCommentRepository{
		FindAllByArticleFunc: func(ctx context.Context, articleID uint) ([]entity.Comment, error) {
			assert.Equal(t, uint(3), articleID)
			return want, nil
		},
	}
	uc := NewCommentUsecase(repo)

	got, err := uc.ListByArticle(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommentUsecase_DeleteComment(t *testing.T) {
	var deleted uint
	repo := &mockCommentRepository{
		DeleteByIDFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	uc := NewCommentUsecase(repo)

	require.NoError(t, uc.DeleteComment(context.Background(), 9))
	assert.Equal(t, uint(9), deleted)
}
