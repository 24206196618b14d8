package dto

// CommunityResponse represents community information returned by the API
type CommunityResponse struct {
	ID          string   `json:"id" example:"1"`
	Name        string   `json:"name" example:"AI Enthusiasts"`
	Category    string   `json:"category" example:"Technology"`
	Description string   `json:"description"`
	MemberCount int      `json:"memberCount" example:"128"`
	Members     []string `json:"members"`
	Image       string   `json:"image,omitempty"`
}

// CommunityListResponse wraps a page of communities
type CommunityListResponse struct {
	Communities []CommunityResponse `json:"communities"`
	Pagination  PaginationInfo      `json:"pagination"`
}

// CommunityFilterRequest carries list filters parsed from the query string
type CommunityFilterRequest struct {
	Search   *string
	Category *string
	Page     int
	PageSize int
}

// JoinCommunityRequest identifies the joining user
type JoinCommunityRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// JoinCommunityResponse returns the updated community snapshot
type JoinCommunityResponse struct {
	Message   string            `json:"message" example:"Successfully joined AI Enthusiasts"`
	Community CommunityResponse `json:"community"`
}
