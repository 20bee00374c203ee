package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListCategories(t *testing.T) {
	_, _, _, catalogService, _ := newServices(t)

	categories, err := catalogService.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 4)
	// 按入库顺序
	assert.Equal(t, "technology", categories[0].Slug)
	assert.Equal(t, "lifestyle", categories[3].Slug)
}

func TestCatalogBlogPosts(t *testing.T) {
	_, _, _, catalogService, _ := newServices(t)

	posts, err := catalogService.ListBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	post, err := catalogService.GetBlogPost("future-of-video")
	require.NoError(t, err)
	assert.Equal(t, "The Future of Video Content", post.Title)

	_, err = catalogService.GetBlogPost("missing-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
