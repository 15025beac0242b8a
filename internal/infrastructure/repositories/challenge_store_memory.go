package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
)

// MemoryChallengeStoreImpl implements domain.ChallengeStore with a
// process-local map. Challenges are lost on restart, which is acceptable for
// a five-minute second factor, but every instance that can receive the verify
// request must share this process. Multi-instance deployments must use the
// Redis store instead.
type MemoryChallengeStoreImpl struct {
	mu         sync.Mutex
	challenges map[string]*domain.Challenge
}

// NewMemoryChallengeStore creates a new in-memory challenge store.
func NewMemoryChallengeStore() domain.ChallengeStore {
	return &MemoryChallengeStoreImpl{
		challenges: make(map[string]*domain.Challenge),
	}
}

// Put implements domain.ChallengeStore. An existing challenge for the email
// is overwritten: a new request always supersedes a pending one.
func (s *MemoryChallengeStoreImpl) Put(ctx context.Context, email string, challenge *domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *challenge
	s.challenges[email] = &cp
	return nil
}

// Get implements domain.ChallengeStore.
func (s *MemoryChallengeStoreImpl) Get(ctx context.Context, email string) (*domain.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[email]
	if !ok {
		return nil, domain.ErrOTPNotFound
	}
	cp := *challenge
	return &cp, nil
}

// Delete implements domain.ChallengeStore.
func (s *MemoryChallengeStoreImpl) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, email)
	return nil
}

// DeleteExpired implements domain.ChallengeStore. Not required for
// correctness since Get callers self-heal on expiry, but it bounds memory
// growth from abandoned challenges.
func (s *MemoryChallengeStoreImpl) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, challenge := range s.challenges {
		if challenge.Expired(now) {
			delete(s.challenges, email)
		}
	}
	return nil
}

var _ domain.ChallengeStore = (*MemoryChallengeStoreImpl)(nil)
