package repository

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPhotoFilter(t *testing.T) {
	sb := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	base := sb.Select("COUNT(*)").From("photos p")

	t.Run("empty filter adds nothing", func(t *testing.T) {
		query, args, err := applyPhotoFilter(base, PhotoFilter{}).ToSql()
		require.NoError(t, err)

		assert.Equal(t, "SELECT COUNT(*) FROM photos p", query)
		assert.Empty(t, args)
	})

	t.Run("category filter", func(t *testing.T) {
		categoryID := int64(3)

		query, args, err := applyPhotoFilter(base, PhotoFilter{CategoryID: &categoryID}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "p.category_id = $1")
		assert.Equal(t, []interface{}{int64(3)}, args)
	})

	t.Run("search hits title, description and tags", func(t *testing.T) {
		query, args, err := applyPhotoFilter(base, PhotoFilter{SearchTerm: "sunset"}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "p.title ILIKE $1")
		assert.Contains(t, query, "p.description ILIKE $2")
		assert.Contains(t, query, "p.tags ILIKE $3")
		assert.Equal(t, []interface{}{"%sunset%", "%sunset%", "%sunset%"}, args)
	})

	t.Run("category and search combine with AND", func(t *testing.T) {
		categoryID := int64(1)

		query, _, err := applyPhotoFilter(base, PhotoFilter{CategoryID: &categoryID, SearchTerm: "sea"}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "p.category_id = $1 AND (p.title ILIKE $2")
	})
}

func TestSortClause(t *testing.T) {
	tests := []struct {
		sortBy string
		want   string
	}{
		{SortNewest, "p.created_at DESC"},
		{SortPopular, "p.likes DESC"},
		{SortViews, "p.views DESC"},
		{"", "p.created_at DESC"},
		{"oldest", "p.created_at DESC"},
		{"likes; DROP TABLE photos", "p.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run("sortBy="+tt.sortBy, func(t *testing.T) {
			assert.Equal(t, tt.want, sortClause(tt.sortBy))
		})
	}
}

func TestDecrementLikesGuard(t *testing.T) {
	// Предикат не дает счетчику уйти ниже нуля
	sb := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := sb.Update("photos").
		Set("likes", sq.Expr("likes - 1")).
		Where(sq.And{sq.Eq{"id": int64(5)}, sq.Gt{"likes": 0}}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE photos SET likes = likes - 1 WHERE (id = $1 AND likes > $2)", query)
	assert.Equal(t, []interface{}{int64(5), 0}, args)
}
