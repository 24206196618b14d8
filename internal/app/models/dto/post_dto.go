package dto

import "time"

// PostResponse represents post information returned by the API
type PostResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	CommunityID  string    `json:"communityId,omitempty"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PostListResponse wraps a page of posts
type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	Pagination PaginationInfo `json:"pagination"`
}

// CreatePostRequest carries a new post submission
type CreatePostRequest struct {
	AuthorID    string `json:"authorId" binding:"required"`
	CommunityID string `json:"communityId"`
	Content     string `json:"content" binding:"required"`
	Image       string `json:"image"`
}
