package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// CommunityService defines the interface for community operations
type CommunityService interface {
	GetAllCommunities(filter *dto.CommunityFilterRequest) (*dto.CommunityListResponse, error)
	GetCommunityByID(id string) (*dto.CommunityResponse, error)
	JoinCommunity(userID, communityID string) (*dto.JoinCommunityResponse, error)
}

// communityServiceImpl implements CommunityService
type communityServiceImpl struct {
	communities *store.CommunityStore
	users       *store.UserStore
	logger      zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communities *store.CommunityStore, users *store.UserStore, logger zerolog.Logger) CommunityService {
	return &communityServiceImpl{
		communities: communities,
		users:       users,
		logger:      logger,
	}
}

// GetAllCommunities retrieves communities with optional search and
// category filtering plus pagination. Search takes precedence; a
// category filter then narrows the result. Empty filters return the
// full list.
func (s *communityServiceImpl) GetAllCommunities(filter *dto.CommunityFilterRequest) (*dto.CommunityListResponse, error) {
	var matched []*models.Community
	if filter.Search != nil {
		matched = s.communities.Search(*filter.Search)
	} else {
		matched = s.communities.List()
	}

	if filter.Category != nil && *filter.Category != "" {
		var narrowed []*models.Community
		for _, c := range matched {
			if equalFold(c.Category, *filter.Category) {
				narrowed = append(narrowed, c)
			}
		}
		matched = narrowed
	}

	start, end := paginateWindow(len(matched), filter.Page, filter.PageSize)
	communities := make([]dto.CommunityResponse, 0, end-start)
	for _, c := range matched[start:end] {
		communities = append(communities, toCommunityResponse(c))
	}

	return &dto.CommunityListResponse{
		Communities: communities,
		Pagination:  paginationInfo(int64(len(matched)), filter.Page, filter.PageSize),
	}, nil
}

// GetCommunityByID retrieves a single community
func (s *communityServiceImpl) GetCommunityByID(id string) (*dto.CommunityResponse, error) {
	community := s.communities.GetByID(id)
	if community == nil {
		return nil, apperrors.ErrCommunityNotFound
	}

	resp := toCommunityResponse(community)
	return &resp, nil
}

// JoinCommunity adds the user to the community and returns the updated
// snapshot. Joining twice is idempotent: the snapshot is identical to
// the one from the first join.
func (s *communityServiceImpl) JoinCommunity(userID, communityID string) (*dto.JoinCommunityResponse, error) {
	if user := s.users.GetByID(userID); user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	community, err := s.communities.Join(userID, communityID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("userId", userID).
		Str("communityId", communityID).
		Int("memberCount", community.MemberCount).
		Msg("User joined community")

	return &dto.JoinCommunityResponse{
		Message:   fmt.Sprintf("Successfully joined %s", community.Name),
		Community: toCommunityResponse(community),
	}, nil
}

func toCommunityResponse(c *models.Community) dto.CommunityResponse {
	return dto.CommunityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Description: c.Description,
		MemberCount: c.MemberCount,
		Members:     append([]string(nil), c.Members...),
		Image:       c.Image,
	}
}
