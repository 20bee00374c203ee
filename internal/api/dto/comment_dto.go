package dto

// CommentCreateRequest 发表评论请求体。
// 昵称与内容均为必填，空值在入口处拦下（400），不落空评论。
type CommentCreateRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Content  string `json:"content" binding:"required"`
}
