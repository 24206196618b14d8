package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func newCommunityFixture() CommunityService {
	users := store.NewUserStore()
	users.Add(models.NewUser("u1", "Alex", "alex@example.edu", "Stanford University", "CS", 3, nil, nil))

	communities := store.NewCommunityStore()
	communities.Add(&models.Community{ID: "c1", Name: "AI Enthusiasts", Category: "Technology"})
	communities.Add(&models.Community{ID: "c2", Name: "Campus Musicians", Category: "Arts"})
	communities.Add(&models.Community{ID: "c3", Name: "Music Theory Circle", Category: "Arts"})

	return NewCommunityService(communities, users, zerolog.Nop())
}

func TestGetAllCommunitiesFilters(t *testing.T) {
	svc := newCommunityFixture()

	resp, err := svc.GetAllCommunities(&dto.CommunityFilterRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Communities, 3)

	search := "music"
	resp, err = svc.GetAllCommunities(&dto.CommunityFilterRequest{Search: &search, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Communities, 2)

	category := "arts"
	resp, err = svc.GetAllCommunities(&dto.CommunityFilterRequest{Search: &search, Category: &category, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Communities, 2)

	category = "Technology"
	resp, err = svc.GetAllCommunities(&dto.CommunityFilterRequest{Search: &search, Category: &category, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, resp.Communities, "category narrows the search result")
}

func TestGetAllCommunitiesPagination(t *testing.T) {
	svc := newCommunityFixture()

	resp, err := svc.GetAllCommunities(&dto.CommunityFilterRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, resp.Communities, 1)
	assert.Equal(t, "c3", resp.Communities[0].ID)
	assert.Equal(t, int64(3), resp.Pagination.TotalItems)
}

func TestJoinCommunityValidatesUserFirst(t *testing.T) {
	svc := newCommunityFixture()

	_, err := svc.JoinCommunity("nobody", "c1")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = svc.JoinCommunity("u1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrCommunityNotFound)

	resp, err := svc.JoinCommunity("u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Successfully joined AI Enthusiasts", resp.Message)
	assert.Equal(t, 1, resp.Community.MemberCount)

	// Joining again yields the same snapshot
	again, err := svc.JoinCommunity("u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, resp.Community, again.Community)
}
