package dto

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID          string   `json:"id" example:"1"`
	Name        string   `json:"name" example:"Alex Johnson"`
	Email       string   `json:"email" example:"alex@stanford.edu"`
	College     string   `json:"college" example:"Stanford University"`
	Major       string   `json:"major" example:"Computer Science"`
	Year        int      `json:"year" example:"3"`
	Avatar      string   `json:"avatar,omitempty"`
	Interests   []string `json:"interests"`
	Connections []string `json:"connections"`
}

// UserListResponse wraps a page of users
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}

// MatchResponse is one ranked similarity result. SharedInterests is the
// explicit overlap so callers can display it, not just the count.
type MatchResponse struct {
	User            UserResponse `json:"user"`
	SharedInterests []string     `json:"sharedInterests"`
	Score           int          `json:"score" example:"2"`
}

// MatchListResponse wraps ranked similarity results
type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}
