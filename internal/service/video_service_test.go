package service

import (
	"testing"

	"tubeseo-go/internal/api/dto"
	"tubeseo-go/internal/model"
	"tubeseo-go/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoListSeededScenario(t *testing.T) {
	_, videoService, _, _, _ := newServices(t)

	// 种子库里 entertainment 分类按热度排序，GANGNAM STYLE 居首
	videos, err := videoService.List(repository.VideoFilter{
		Category: "entertainment",
		Sort:     repository.SortPopular,
	})
	require.NoError(t, err)
	require.NotEmpty(t, videos)
	assert.Equal(t, "9bZkp7q19f0", videos[0].YoutubeID)
	assert.Equal(t, "Entertainment", videos[0].CategoryName)
	assert.EqualValues(t, 4000000, videos[0].Views)
}

func TestVideoGetDetailNotFound(t *testing.T) {
	_, videoService, _, _, _ := newServices(t)

	_, err := videoService.GetDetail("does-not-exist")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestVideoGetDetailWithComments(t *testing.T) {
	db, videoService, _, _, _ := newServices(t)

	// 没有评论时返回空列表，而不是 NotFound
	detail, err := videoService.GetDetail("dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", detail.Title)
	assert.Equal(t, "Entertainment", detail.CategoryName)
	assert.Empty(t, detail.Comments)

	require.NoError(t, db.Create(&model.Comment{
		VideoID: detail.ID, UserName: "ann", Content: "classic",
	}).Error)
	require.NoError(t, db.Create(&model.Comment{
		VideoID: detail.ID, UserName: "bob", Content: "never gets old",
	}).Error)

	detail, err = videoService.GetDetail("dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, detail.Comments, 2)
	// 新评论在前
	assert.Equal(t, "never gets old", detail.Comments[0].Content)
}

func TestCommentCreateOnUnknownVideo(t *testing.T) {
	db, _, commentService, _, _ := newServices(t)

	_, err := commentService.Create("does-not-exist", &dto.CommentCreateRequest{
		UserName: "ann", Content: "hello",
	})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	// 失败路径不留痕
	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommentCreateThenDetailFirst(t *testing.T) {
	_, videoService, commentService, _, _ := newServices(t)

	comment, err := commentService.Create("jNQXAC9IVRw", &dto.CommentCreateRequest{
		UserName: "ann", Content: "history!",
	})
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())

	detail, err := videoService.GetDetail("jNQXAC9IVRw")
	require.NoError(t, err)
	require.NotEmpty(t, detail.Comments)
	assert.Equal(t, comment.ID, detail.Comments[0].ID)
}
