package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

func newTestCommunities() *CommunityStore {
	s := NewCommunityStore()
	s.Add(&models.Community{ID: "c1", Name: "Chess Club", Category: "Games", MemberCount: 1, Members: []string{"u1"}})
	s.Add(&models.Community{ID: "c2", Name: "Robotics Lab", Category: "Technology"})
	return s
}

func TestCommunityJoin(t *testing.T) {
	s := newTestCommunities()

	community, err := s.Join("u2", "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, community.MemberCount)
	assert.Contains(t, community.Members, "u2")
}

func TestCommunityJoinIsIdempotent(t *testing.T) {
	s := newTestCommunities()

	_, err := s.Join("u2", "c1")
	require.NoError(t, err)
	community, err := s.Join("u2", "c1")
	require.NoError(t, err)

	assert.Equal(t, 2, community.MemberCount)
	assert.Equal(t, []string{"u1", "u2"}, community.Members)
}

func TestCommunityJoinUnknownCommunity(t *testing.T) {
	s := newTestCommunities()

	_, err := s.Join("u1", "missing")
	assert.ErrorIs(t, err, apperrors.ErrCommunityNotFound)
}

func TestCommunitySearchAndFilter(t *testing.T) {
	s := newTestCommunities()

	assert.Len(t, s.Search(""), 2, "empty query matches everything")
	assert.Len(t, s.Search("chess"), 1)
	assert.Len(t, s.FilterByCategory("technology"), 1, "category filter is case-insensitive")
	assert.Empty(t, s.FilterByCategory("Sports"))
}

func TestCommunityReturnsCopies(t *testing.T) {
	s := newTestCommunities()

	got := s.GetByID("c1")
	require.NotNil(t, got)
	got.Members[0] = "tampered"
	got.MemberCount = 99

	again := s.GetByID("c1")
	assert.Equal(t, []string{"u1"}, again.Members)
	assert.Equal(t, 1, again.MemberCount)
}
