package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// PostService defines the interface for feed operations
type PostService interface {
	GetFeed(userID string, page, pageSize int) (*dto.PostListResponse, error)
	CreatePost(req *dto.CreatePostRequest) (*dto.PostResponse, error)
	LikePost(postID string) (*dto.PostResponse, error)
	AddComment(postID string) (*dto.PostResponse, error)
}

// postServiceImpl implements PostService
type postServiceImpl struct {
	posts       *store.PostStore
	users       *store.UserStore
	communities *store.CommunityStore
	logger      zerolog.Logger
	now         func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(posts *store.PostStore, users *store.UserStore, communities *store.CommunityStore, logger zerolog.Logger) PostService {
	return &postServiceImpl{
		posts:       posts,
		users:       users,
		communities: communities,
		logger:      logger,
		now:         time.Now,
	}
}

// GetFeed returns posts newest first. The feed is currently global: the
// userID parameter is accepted for the operation contract but does not
// yet narrow the result to connections or joined communities.
func (s *postServiceImpl) GetFeed(userID string, page, pageSize int) (*dto.PostListResponse, error) {
	all := s.posts.List()

	start, end := paginateWindow(len(all), page, pageSize)
	posts := make([]dto.PostResponse, 0, end-start)
	for _, p := range all[start:end] {
		posts = append(posts, toPostResponse(p))
	}

	return &dto.PostListResponse{
		Posts:      posts,
		Pagination: paginationInfo(int64(len(all)), page, pageSize),
	}, nil
}

// CreatePost stores a new post with a generated id and server timestamp
func (s *postServiceImpl) CreatePost(req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if user := s.users.GetByID(req.AuthorID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.CommunityID != "" {
		if community := s.communities.GetByID(req.CommunityID); community == nil {
			return nil, apperrors.ErrCommunityNotFound
		}
	}

	post := &models.Post{
		ID:          uuid.NewString(),
		AuthorID:    req.AuthorID,
		CommunityID: req.CommunityID,
		Content:     req.Content,
		Image:       req.Image,
		CreatedAt:   s.now(),
	}
	s.posts.Add(post)

	s.logger.Info().
		Str("postId", post.ID).
		Str("authorId", post.AuthorID).
		Msg("Post created")

	resp := toPostResponse(post)
	return &resp, nil
}

// LikePost increments the like counter
func (s *postServiceImpl) LikePost(postID string) (*dto.PostResponse, error) {
	post, err := s.posts.Like(postID)
	if err != nil {
		return nil, err
	}

	resp := toPostResponse(post)
	return &resp, nil
}

// AddComment increments the comment counter
func (s *postServiceImpl) AddComment(postID string) (*dto.PostResponse, error) {
	post, err := s.posts.AddComment(postID)
	if err != nil {
		return nil, err
	}

	resp := toPostResponse(post)
	return &resp, nil
}

func toPostResponse(p *models.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		CommunityID:  p.CommunityID,
		Content:      p.Content,
		Image:        p.Image,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}
