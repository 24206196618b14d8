package models

// User represents a registered campus member.
//
// Interests are treated as a set: duplicates carry no meaning and are
// removed at construction. Connections are directed; the source data
// does not guarantee symmetry and none is assumed anywhere.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	College     string   `json:"college"`
	Major       string   `json:"major"`
	Year        int      `json:"year"`
	Avatar      string   `json:"avatar,omitempty"`
	Interests   []string `json:"interests"`
	Connections []string `json:"connections"`
}

// NewUser builds a User with a deduplicated interest list. Order of
// first occurrence is preserved so similarity output stays stable.
func NewUser(id, name, email, college, major string, year int, interests, connections []string) *User {
	return &User{
		ID:          id,
		Name:        name,
		Email:       email,
		College:     college,
		Major:       major,
		Year:        year,
		Interests:   dedupeStrings(interests),
		Connections: connections,
	}
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
