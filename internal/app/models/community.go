package models

// Community represents a student community or club
type Community struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	MemberCount int      `json:"memberCount"`
	Members     []string `json:"members"`
	Image       string   `json:"image,omitempty"`
}

// IsMember reports whether the user id is in the member list
func (c *Community) IsMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}
