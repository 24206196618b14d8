package services

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models/dto"
	"github.com/kranthik10/campusconnect/internal/app/store"
)

// MatchService ranks users by shared-interest overlap with a target
// user. It only reads the directory; it never mutates anything.
type MatchService interface {
	MatchSimilarUsers(userID string, limit int) (*dto.MatchListResponse, error)
}

// matchServiceImpl implements MatchService
type matchServiceImpl struct {
	users        *store.UserStore
	defaultLimit int
	maxLimit     int
	logger       zerolog.Logger
}

// NewMatchService creates a new MatchService. defaultLimit applies when
// the caller passes limit <= 0; maxLimit caps caller-supplied limits.
func NewMatchService(users *store.UserStore, defaultLimit, maxLimit int, logger zerolog.Logger) MatchService {
	return &matchServiceImpl{
		users:        users,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// MatchSimilarUsers returns up to limit users ranked by the number of
// interests they share with the target, descending. The target and all
// zero-overlap users are excluded. Interest matching is case-sensitive
// and exact. Equal scores order by ascending user id, which makes the
// ranking deterministic regardless of directory insertion order.
//
// An unknown target yields an empty list rather than an error: absence
// of a match source is absence of data, not a failure.
func (s *matchServiceImpl) MatchSimilarUsers(userID string, limit int) (*dto.MatchListResponse, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	target := s.users.GetByID(userID)
	if target == nil {
		s.logger.Debug().Str("userId", userID).Msg("Match target not found, returning empty result")
		return &dto.MatchListResponse{Matches: []dto.MatchResponse{}}, nil
	}

	targetInterests := make(map[string]struct{}, len(target.Interests))
	for _, interest := range target.Interests {
		targetInterests[interest] = struct{}{}
	}

	var matches []dto.MatchResponse
	for _, candidate := range s.users.List() {
		if candidate.ID == userID {
			continue
		}

		// Shared interests follow the target's interest order so the
		// overlap list reads the same for every candidate.
		var shared []string
		candidateInterests := make(map[string]struct{}, len(candidate.Interests))
		for _, interest := range candidate.Interests {
			candidateInterests[interest] = struct{}{}
		}
		for _, interest := range target.Interests {
			if _, ok := candidateInterests[interest]; ok {
				shared = append(shared, interest)
			}
		}

		if len(shared) == 0 {
			continue
		}

		matches = append(matches, dto.MatchResponse{
			User:            toUserResponse(candidate),
			SharedInterests: shared,
			Score:           len(shared),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].User.ID < matches[j].User.ID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		matches = []dto.MatchResponse{}
	}

	s.logger.Debug().
		Str("userId", userID).
		Int("limit", limit).
		Int("results", len(matches)).
		Msg("Computed similarity matches")

	return &dto.MatchListResponse{Matches: matches}, nil
}
