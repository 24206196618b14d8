package store

import (
	"strings"
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// CommunityStore holds the community directory
type CommunityStore struct {
	mu          sync.RWMutex
	communities map[string]*models.Community
	order       []string
}

// NewCommunityStore creates an empty community store
func NewCommunityStore() *CommunityStore {
	return &CommunityStore{
		communities: make(map[string]*models.Community),
	}
}

// Add inserts or replaces a community record
func (s *CommunityStore) Add(community *models.Community) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.communities[community.ID]; !exists {
		s.order = append(s.order, community.ID)
	}
	s.communities[community.ID] = copyCommunity(community)
}

// GetByID returns a copy of the community, or nil when unknown
func (s *CommunityStore) GetByID(id string) *models.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()

	community, ok := s.communities[id]
	if !ok {
		return nil
	}
	return copyCommunity(community)
}

// List returns all communities in insertion order
func (s *CommunityStore) List() []*models.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Community, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyCommunity(s.communities[id]))
	}
	return out
}

// FilterByCategory returns communities whose category matches exactly,
// ignoring case
func (s *CommunityStore) FilterByCategory(category string) []*models.Community {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Community
	for _, id := range s.order {
		c := s.communities[id]
		if strings.EqualFold(c.Category, category) {
			out = append(out, copyCommunity(c))
		}
	}
	return out
}

// Search returns communities whose name, description or category
// contains the query, case-insensitively. An empty query returns the
// full list.
func (s *CommunityStore) Search(query string) []*models.Community {
	if query == "" {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*models.Community
	for _, id := range s.order {
		c := s.communities[id]
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(c.Category), q) {
			out = append(out, copyCommunity(c))
		}
	}
	return out
}

// Join adds the user to the community. Joining is idempotent: a second
// join neither appends the member again nor bumps the counter. The
// member count and member set move together under the same lock.
func (s *CommunityStore) Join(userID, communityID string) (*models.Community, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	community, ok := s.communities[communityID]
	if !ok {
		return nil, apperrors.ErrCommunityNotFound
	}

	if !community.IsMember(userID) {
		community.Members = append(community.Members, userID)
		community.MemberCount++
	}

	return copyCommunity(community), nil
}

func copyCommunity(c *models.Community) *models.Community {
	cp := *c
	cp.Members = append([]string(nil), c.Members...)
	return &cp
}
