package repository

import (
	"testing"
	"time"

	"tubeseo-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentListByVideoOrder(t *testing.T) {
	db := newTestDB(t)

	cat := model.Category{Name: "Technology", Slug: "technology"}
	mustCreate(t, db, &cat)
	video := model.Video{YoutubeID: "vid-1", Title: "One", CategoryID: cat.ID}
	mustCreate(t, db, &video)

	repo := NewCommentRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, c := range []model.Comment{
		{VideoID: video.ID, UserName: "ann", Content: "first", CreatedAt: base},
		{VideoID: video.ID, UserName: "bob", Content: "second", CreatedAt: base.Add(time.Minute)},
		{VideoID: video.ID, UserName: "cid", Content: "third", CreatedAt: base.Add(2 * time.Minute)},
	} {
		c := c
		require.NoError(t, repo.Create(&c), "comment %d", i)
	}

	comments, err := repo.ListByVideo(video.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	// 新评论在前
	assert.Equal(t, "third", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "first", comments[2].Content)

	count, err := repo.CountByVideo(video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestCommentListByVideoEmpty(t *testing.T) {
	db := newTestDB(t)

	cat := model.Category{Name: "Technology", Slug: "technology"}
	mustCreate(t, db, &cat)
	video := model.Video{YoutubeID: "vid-1", Title: "One", CategoryID: cat.ID}
	mustCreate(t, db, &video)

	repo := NewCommentRepository(db)

	comments, err := repo.ListByVideo(video.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentCreateFillsGeneratedFields(t *testing.T) {
	db := newTestDB(t)

	cat := model.Category{Name: "Technology", Slug: "technology"}
	mustCreate(t, db, &cat)
	video := model.Video{YoutubeID: "vid-1", Title: "One", CategoryID: cat.ID}
	mustCreate(t, db, &video)

	repo := NewCommentRepository(db)

	comment := model.Comment{VideoID: video.ID, UserName: "ann", Content: "hello"}
	require.NoError(t, repo.Create(&comment))

	// 写入后调用方直接拿到生成的ID和时间戳
	assert.NotZero(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
}
