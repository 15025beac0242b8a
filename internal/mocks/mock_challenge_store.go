package mocks

import (
	"context"

	"github.com/dheerendra45/news-analyzer/domain"
)

// MockChallengeStore implements domain.ChallengeStore interface for testing
type MockChallengeStore struct {
	PutFunc           func(ctx context.Context, email string, challenge *domain.Challenge) error
	GetFunc           func(ctx context.Context, email string) (*domain.Challenge, error)
	DeleteFunc        func(ctx context.Context, email string) error
	DeleteExpiredFunc func(ctx context.Context) error
}

// NewMockChallengeStore creates a new MockChallengeStore with default behaviors
func NewMockChallengeStore() *MockChallengeStore {
	return &MockChallengeStore{}
}

// Put stores a challenge
func (m *MockChallengeStore) Put(ctx context.Context, email string, challenge *domain.Challenge) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, email, challenge)
	}
	// Default behavior: success
	return nil
}

// Get retrieves a challenge
func (m *MockChallengeStore) Get(ctx context.Context, email string) (*domain.Challenge, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrOTPNotFound
}

// Delete removes a challenge
func (m *MockChallengeStore) Delete(ctx context.Context, email string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// DeleteExpired reaps expired challenges
func (m *MockChallengeStore) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ChallengeStore = (*MockChallengeStore)(nil)
