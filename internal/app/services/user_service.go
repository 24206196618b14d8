package services

import (
	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// UserService defines the interface for user directory operations
type UserService interface {
	GetUser(id string) (*dto.UserResponse, error)
	SearchUsers(query string, page, pageSize int) (*dto.UserListResponse, error)
	GetConnections(userID string) ([]dto.UserResponse, error)
	ListInterests() []string
	ListColleges() []string
	SearchColleges(query string) []string
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	users     *store.UserStore
	interests []string
	colleges  []string
	logger    zerolog.Logger
}

// NewUserService creates a new UserService over the user directory and
// the static interest/college catalogs
func NewUserService(users *store.UserStore, interests, colleges []string, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		users:     users,
		interests: interests,
		colleges:  colleges,
		logger:    logger,
	}
}

// GetUser retrieves a single user by id
func (s *userServiceImpl) GetUser(id string) (*dto.UserResponse, error) {
	user := s.users.GetByID(id)
	if user == nil {
		s.logger.Debug().Str("userId", id).Msg("User not found")
		return nil, apperrors.ErrUserNotFound
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// SearchUsers finds users matching the query over name, major and
// interest tags. An empty query returns the full directory.
func (s *userServiceImpl) SearchUsers(query string, page, pageSize int) (*dto.UserListResponse, error) {
	matched := s.users.Search(query)

	start, end := paginateWindow(len(matched), page, pageSize)
	users := make([]dto.UserResponse, 0, end-start)
	for _, u := range matched[start:end] {
		users = append(users, toUserResponse(u))
	}

	return &dto.UserListResponse{
		Users:      users,
		Pagination: paginationInfo(int64(len(matched)), page, pageSize),
	}, nil
}

// GetConnections resolves the user's connection list to user records.
// Unknown user ids produce an empty list, not an error. The relation is
// directed; no reverse edges are implied.
func (s *userServiceImpl) GetConnections(userID string) ([]dto.UserResponse, error) {
	connections := s.users.Connections(userID)

	out := make([]dto.UserResponse, 0, len(connections))
	for _, c := range connections {
		out = append(out, toUserResponse(c))
	}
	return out, nil
}

// ListInterests returns the static interest catalog
func (s *userServiceImpl) ListInterests() []string {
	return append([]string(nil), s.interests...)
}

// ListColleges returns the static college catalog
func (s *userServiceImpl) ListColleges() []string {
	return append([]string(nil), s.colleges...)
}

// SearchColleges returns colleges containing the query, case-insensitively
func (s *userServiceImpl) SearchColleges(query string) []string {
	if query == "" {
		return s.ListColleges()
	}

	var out []string
	for _, college := range s.colleges {
		if containsFold(college, query) {
			out = append(out, college)
		}
	}
	return out
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		College:     u.College,
		Major:       u.Major,
		Year:        u.Year,
		Avatar:      u.Avatar,
		Interests:   append([]string(nil), u.Interests...),
		Connections: append([]string(nil), u.Connections...),
	}
}
