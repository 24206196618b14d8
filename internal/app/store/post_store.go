package store

import (
	"sort"
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// PostStore holds feed posts
type PostStore struct {
	mu    sync.RWMutex
	posts map[string]*models.Post
	order []string
}

// NewPostStore creates an empty post store
func NewPostStore() *PostStore {
	return &PostStore{
		posts: make(map[string]*models.Post),
	}
}

// Add inserts or replaces a post record
func (s *PostStore) Add(post *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[post.ID]; !exists {
		s.order = append(s.order, post.ID)
	}
	s.posts[post.ID] = copyPost(post)
}

// GetByID returns a copy of the post, or nil when unknown
func (s *PostStore) GetByID(id string) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil
	}
	return copyPost(post)
}

// List returns all posts, newest first. Ties on timestamp keep
// insertion order.
func (s *PostStore) List() []*models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyPost(s.posts[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Like increments the like counter. Counters are the only mutable part
// of a post.
func (s *PostStore) Like(postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}

	post.LikeCount++
	return copyPost(post), nil
}

// AddComment increments the comment counter
func (s *PostStore) AddComment(postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}

	post.CommentCount++
	return copyPost(post), nil
}

func copyPost(p *models.Post) *models.Post {
	cp := *p
	return &cp
}
