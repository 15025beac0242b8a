package mocks

import (
	"context"

	"github.com/dheerendra45/news-analyzer/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, email, username, password string) (*domain.User, error)
	RegisterAdminFunc      func(ctx context.Context, email, username, password string) (*domain.User, error)
	AuthenticateFunc       func(ctx context.Context, email, password string) (*domain.User, error)
	LoginFunc              func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	AdminLoginStartFunc    func(ctx context.Context, email, password string) error
	AdminLoginCompleteFunc func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	GetUserByIDFunc        func(ctx context.Context, id string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers an ordinary user
func (m *MockAuthService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, username, password)
	}
	// Default behavior: echo an active user
	return &domain.User{Email: email, Username: username, Role: domain.RoleUser, IsActive: true}, nil
}

// RegisterAdmin registers an admin account
func (m *MockAuthService) RegisterAdmin(ctx context.Context, email, username, password string) (*domain.User, error) {
	if m.RegisterAdminFunc != nil {
		return m.RegisterAdminFunc(ctx, email, username, password)
	}
	// Default behavior: echo an active admin
	return &domain.User{Email: email, Username: username, Role: domain.RoleAdmin, IsActive: true}, nil
}

// Authenticate checks credentials
func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// Login performs a password login
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// AdminLoginStart begins the two-step admin flow
func (m *MockAuthService) AdminLoginStart(ctx context.Context, email, password string) error {
	if m.AdminLoginStartFunc != nil {
		return m.AdminLoginStartFunc(ctx, email, password)
	}
	// Default behavior: success
	return nil
}

// AdminLoginComplete finishes the two-step admin flow
func (m *MockAuthService) AdminLoginComplete(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.AdminLoginCompleteFunc != nil {
		return m.AdminLoginCompleteFunc(ctx, email, code)
	}
	// Default behavior: rejected
	return nil, domain.ErrOTPInvalid
}

// GetUserByID fetches a user by ID
func (m *MockAuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
