package store

import (
	"sync"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/pkg/apperrors"
)

// ReferralStore holds referral records
type ReferralStore struct {
	mu        sync.Mutex
	referrals map[string]*models.Referral
	order     []string
}

// NewReferralStore creates an empty referral store
func NewReferralStore() *ReferralStore {
	return &ReferralStore{
		referrals: make(map[string]*models.Referral),
	}
}

// Add inserts or replaces a referral record
func (s *ReferralStore) Add(referral *models.Referral) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.referrals[referral.ID]; !exists {
		s.order = append(s.order, referral.ID)
	}
	s.referrals[referral.ID] = copyReferral(referral)
}

// GetByID returns a copy of the referral, or nil when unknown
func (s *ReferralStore) GetByID(id string) *models.Referral {
	s.mu.Lock()
	defer s.mu.Unlock()

	referral, ok := s.referrals[id]
	if !ok {
		return nil
	}
	return copyReferral(referral)
}

// ListByReferrer returns referrals created by the user, in insertion order
func (s *ReferralStore) ListByReferrer(userID string) []*models.Referral {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Referral
	for _, id := range s.order {
		r := s.referrals[id]
		if r.ReferrerID == userID {
			out = append(out, copyReferral(r))
		}
	}
	return out
}

// Complete transitions a referral from pending to completed. The
// transition happens at most once: completing an already-completed
// referral reports transitioned=false without error.
func (s *ReferralStore) Complete(id string) (referral *models.Referral, transitioned bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.referrals[id]
	if !ok {
		return nil, false, apperrors.ErrReferralNotFound
	}

	if r.Status == models.ReferralCompleted {
		return copyReferral(r), false, nil
	}

	r.Status = models.ReferralCompleted
	return copyReferral(r), true, nil
}

func copyReferral(r *models.Referral) *models.Referral {
	cp := *r
	return &cp
}
