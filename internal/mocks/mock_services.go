package mocks

import (
	"context"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
)

// MockPasswordService implements domain.PasswordService interface for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: marked passthrough
	return "hashed:" + password, nil
}

// Verify checks a password against its hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: match against the passthrough scheme
	return hashedPassword == "hashed:"+password
}

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	IssueFunc  func(user *domain.User) (string, time.Duration, error)
	VerifyFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues an access token
func (m *MockTokenService) Issue(user *domain.User) (string, time.Duration, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(user)
	}
	// Default behavior: static token
	return "token-" + user.ID, 30 * time.Minute, nil
}

// Verify validates a token
func (m *MockTokenService) Verify(token string) (*domain.TokenClaims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueAndDispatchFunc func(ctx context.Context, email string, user *domain.User) error
	VerifyFunc           func(ctx context.Context, email, code string) (bool, error)
	SweepExpiredFunc     func(ctx context.Context) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// IssueAndDispatch issues a challenge and sends the code
func (m *MockOTPService) IssueAndDispatch(ctx context.Context, email string, user *domain.User) error {
	if m.IssueAndDispatchFunc != nil {
		return m.IssueAndDispatchFunc(ctx, email, user)
	}
	// Default behavior: success
	return nil
}

// Verify checks a submitted code
func (m *MockOTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	// Default behavior: no challenge
	return false, domain.ErrOTPNotFound
}

// SweepExpired reaps expired challenges
func (m *MockOTPService) SweepExpired(ctx context.Context) error {
	if m.SweepExpiredFunc != nil {
		return m.SweepExpiredFunc(ctx)
	}
	// Default behavior: success
	return nil
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendOTPEmailFunc func(to, username, code string, validity time.Duration) error

	// Sent records each dispatched code keyed by recipient.
	Sent map[string]string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{Sent: make(map[string]string)}
}

// SendOTPEmail records the dispatched code
func (m *MockNotificationService) SendOTPEmail(to, username, code string, validity time.Duration) error {
	if m.SendOTPEmailFunc != nil {
		return m.SendOTPEmailFunc(to, username, code, validity)
	}
	// Default behavior: record and succeed
	if m.Sent != nil {
		m.Sent[to] = code
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService     = (*MockPasswordService)(nil)
	_ domain.TokenService        = (*MockTokenService)(nil)
	_ domain.OTPService          = (*MockOTPService)(nil)
	_ domain.NotificationService = (*MockNotificationService)(nil)
)
