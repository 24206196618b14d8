package store

import (
	"strings"
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
)

// UserStore holds the user directory. Iteration order is insertion
// order, which keeps search results and similarity candidates stable
// across calls.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
	order []string
}

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*models.User),
	}
}

// Add inserts or replaces a user record
func (s *UserStore) Add(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; !exists {
		s.order = append(s.order, user.ID)
	}
	s.users[user.ID] = copyUser(user)
}

// GetByID returns a copy of the user, or nil when the id is unknown.
// Unknown ids are not an error in this domain.
func (s *UserStore) GetByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil
	}
	return copyUser(user)
}

// List returns all users in insertion order
func (s *UserStore) List() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyUser(s.users[id]))
	}
	return out
}

// Search returns users whose name, major or any interest tag contains
// the query, case-insensitively. An empty query returns the full
// directory so that clearing a search restores the complete list.
func (s *UserStore) Search(query string) []*models.User {
	if query == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*models.User
	for _, id := range s.order {
		u := s.users[id]
		if strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Major), q) ||
			anyContains(u.Interests, q) {
			out = append(out, copyUser(u))
		}
	}
	return out
}

// Connections resolves a user's connection ids to user records.
// Unknown target or dangling connection ids yield empty/skipped
// entries, never an error. The relation is directed.
func (s *UserStore) Connections(userID string) []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil
	}

	var out []*models.User
	for _, id := range user.Connections {
		if conn, ok := s.users[id]; ok {
			out = append(out, copyUser(conn))
		}
	}
	return out
}

func anyContains(values []string, loweredQuery string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), loweredQuery) {
			return true
		}
	}
	return false
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Interests = append([]string(nil), u.Interests...)
	c.Connections = append([]string(nil), u.Connections...)
	return &c
}
