package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/store"
)

func newMatchFixture() *store.UserStore {
	users := store.NewUserStore()
	users.Add(models.NewUser("a", "Ana", "ana@example.edu", "Stanford University", "CS", 2,
		[]string{"AI", "Music", "Soccer"}, nil))
	users.Add(models.NewUser("b", "Ben", "ben@example.edu", "MIT", "Math", 3,
		[]string{"AI", "Chess"}, nil))
	users.Add(models.NewUser("c", "Cal", "cal@example.edu", "UC Berkeley", "Physics", 1,
		[]string{"Music", "Soccer", "Chess"}, nil))
	users.Add(models.NewUser("d", "Dee", "dee@example.edu", "Harvard University", "History", 4,
		[]string{"Painting"}, nil))
	return users
}

func newMatchService(users *store.UserStore) MatchService {
	return NewMatchService(users, 5, 50, zerolog.Nop())
}

func TestMatchSimilarUsersRanksByOverlap(t *testing.T) {
	svc := newMatchService(newMatchFixture())

	resp, err := svc.MatchSimilarUsers("a", 10)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 2, "zero-overlap users are excluded")

	assert.Equal(t, "c", resp.Matches[0].User.ID)
	assert.Equal(t, 2, resp.Matches[0].Score)
	assert.Equal(t, []string{"Music", "Soccer"}, resp.Matches[0].SharedInterests)

	assert.Equal(t, "b", resp.Matches[1].User.ID)
	assert.Equal(t, 1, resp.Matches[1].Score)
	assert.Equal(t, []string{"AI"}, resp.Matches[1].SharedInterests)
}

func TestMatchSimilarUsersExcludesTarget(t *testing.T) {
	svc := newMatchService(newMatchFixture())

	resp, err := svc.MatchSimilarUsers("a", 10)
	require.NoError(t, err)
	for _, m := range resp.Matches {
		assert.NotEqual(t, "a", m.User.ID)
	}
}

func TestMatchSimilarUsersTieBreaksOnUserID(t *testing.T) {
	users := store.NewUserStore()
	users.Add(models.NewUser("t", "Target", "t@example.edu", "MIT", "CS", 1, []string{"AI"}, nil))
	users.Add(models.NewUser("z", "Zoe", "z@example.edu", "MIT", "CS", 1, []string{"AI"}, nil))
	users.Add(models.NewUser("m", "Mel", "m@example.edu", "MIT", "CS", 1, []string{"AI"}, nil))
	svc := newMatchService(users)

	resp, err := svc.MatchSimilarUsers("t", 10)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "m", resp.Matches[0].User.ID)
	assert.Equal(t, "z", resp.Matches[1].User.ID)
}

func TestMatchSimilarUsersAppliesLimits(t *testing.T) {
	users := newMatchFixture()
	svc := NewMatchService(users, 1, 50, zerolog.Nop())

	// limit <= 0 falls back to the default limit
	resp, err := svc.MatchSimilarUsers("a", 0)
	require.NoError(t, err)
	assert.Len(t, resp.Matches, 1)
	assert.Equal(t, "c", resp.Matches[0].User.ID)

	// caller limit above the max is capped
	svc = NewMatchService(users, 5, 1, zerolog.Nop())
	resp, err = svc.MatchSimilarUsers("a", 100)
	require.NoError(t, err)
	assert.Len(t, resp.Matches, 1)
}

func TestMatchSimilarUsersUnknownTarget(t *testing.T) {
	svc := newMatchService(newMatchFixture())

	resp, err := svc.MatchSimilarUsers("missing", 10)
	require.NoError(t, err)
	assert.NotNil(t, resp.Matches)
	assert.Empty(t, resp.Matches)
}

func TestMatchSimilarUsersIsCaseSensitive(t *testing.T) {
	users := store.NewUserStore()
	users.Add(models.NewUser("t", "Target", "t@example.edu", "MIT", "CS", 1, []string{"ai"}, nil))
	users.Add(models.NewUser("o", "Other", "o@example.edu", "MIT", "CS", 1, []string{"AI"}, nil))
	svc := newMatchService(users)

	resp, err := svc.MatchSimilarUsers("t", 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Matches, "interest tags compare exactly")
}
