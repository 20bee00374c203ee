package repository

import (
	"testing"
	"time"

	"tubeseo-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBlogListNewestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mustCreate(t, db, &model.BlogPost{Title: "Old", Slug: "old", PublishedAt: base})
	mustCreate(t, db, &model.BlogPost{Title: "New", Slug: "new", PublishedAt: base.Add(72 * time.Hour)})

	repo := NewBlogRepository(db)

	posts, err := repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Slug)
	assert.Equal(t, "old", posts[1].Slug)
}

func TestBlogGetBySlug(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &model.BlogPost{Title: "Guide", Slug: "guide", Content: "body"})

	repo := NewBlogRepository(db)

	post, err := repo.GetBySlug("guide")
	require.NoError(t, err)
	assert.Equal(t, "Guide", post.Title)

	_, err = repo.GetBySlug("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBlogListSlugs(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &model.BlogPost{Title: "A", Slug: "a"})
	mustCreate(t, db, &model.BlogPost{Title: "B", Slug: "b"})

	repo := NewBlogRepository(db)

	slugs, err := repo.ListSlugs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, slugs)
}

func TestCategoryListInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	mustCreate(t, db, &model.Category{Name: "Technology", Slug: "technology"})
	mustCreate(t, db, &model.Category{Name: "Education", Slug: "education"})

	repo := NewCategoryRepository(db)

	categories, err := repo.List()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "technology", categories[0].Slug)
	assert.Equal(t, "education", categories[1].Slug)
}
