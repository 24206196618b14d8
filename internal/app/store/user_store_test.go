package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
)

func newTestUsers() *UserStore {
	s := NewUserStore()
	s.Add(models.NewUser("u1", "Alex Johnson", "alex@example.edu", "Stanford University", "Computer Science", 3,
		[]string{"AI", "Music"}, []string{"u2", "ghost"}))
	s.Add(models.NewUser("u2", "Maya Patel", "maya@example.edu", "UC Berkeley", "Cognitive Science", 2,
		[]string{"Chess"}, nil))
	return s
}

func TestUserSearchEmptyQueryReturnsAll(t *testing.T) {
	s := newTestUsers()

	all := s.Search("")
	require.Len(t, all, 2)
	assert.Equal(t, "u1", all[0].ID)
	assert.Equal(t, "u2", all[1].ID)
}

func TestUserSearchMatchesNameMajorAndInterests(t *testing.T) {
	s := newTestUsers()

	assert.Len(t, s.Search("alex"), 1)
	assert.Len(t, s.Search("cognitive"), 1)
	assert.Len(t, s.Search("chess"), 1)
	assert.Empty(t, s.Search("astronomy"))
}

func TestConnectionsSkipDanglingIDs(t *testing.T) {
	s := newTestUsers()

	connections := s.Connections("u1")
	require.Len(t, connections, 1)
	assert.Equal(t, "u2", connections[0].ID)

	assert.Nil(t, s.Connections("nobody"))
}

func TestUserStoreReturnsCopies(t *testing.T) {
	s := newTestUsers()

	got := s.GetByID("u1")
	require.NotNil(t, got)
	got.Interests[0] = "tampered"

	assert.Equal(t, []string{"AI", "Music"}, s.GetByID("u1").Interests)
}
