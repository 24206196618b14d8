package models

import "time"

// Post represents a feed post. Content is immutable once created;
// only the like and comment counters change afterwards.
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	CommunityID  string    `json:"communityId,omitempty"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
