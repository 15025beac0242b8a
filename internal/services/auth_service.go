package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
)

// AuthServiceImpl implements domain.AuthService.
type AuthServiceImpl struct {
	userRepo     domain.UserRepository
	passwordSvc  domain.PasswordService
	tokenSvc     domain.TokenService
	otpSvc       domain.OTPService
	adminDomains []string
}

// NewAuthService creates a new auth service. adminDomains must already be
// lower-cased.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	adminDomains []string,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		passwordSvc:  passwordSvc,
		tokenSvc:     tokenSvc,
		otpSvc:       otpSvc,
		adminDomains: adminDomains,
	}
}

// Register implements domain.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	return s.createUser(ctx, email, username, password, domain.RoleUser)
}

// RegisterAdmin implements domain.AuthService. The domain check runs before
// any uniqueness check so a disallowed domain never probes the store.
func (s *AuthServiceImpl) RegisterAdmin(ctx context.Context, email, username, password string) (*domain.User, error) {
	if !s.isAllowedAdminDomain(email) {
		return nil, domain.ErrAdminDomainNotAllowed
	}
	return s.createUser(ctx, email, username, password, domain.RoleAdmin)
}

func (s *AuthServiceImpl) createUser(ctx context.Context, email, username, password string, role domain.Role) (*domain.User, error) {
	// Fast-path uniqueness check; the store's unique indexes remain the
	// source of truth under concurrent inserts.
	existing, err := s.userRepo.FindByEmailOrUsername(ctx, email, username)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(email),
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrUserAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate implements domain.AuthService. Fails closed: a missing user,
// a wrong password, and an inactive account all produce the same outcome.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login implements domain.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

// AdminLoginStart implements domain.AuthService: step 1 of the two-factor
// admin flow. A successful password check for an admin account dispatches an
// OTP challenge; no token is issued yet.
func (s *AuthServiceImpl) AdminLoginStart(ctx context.Context, email, password string) error {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	if !user.IsAdmin() {
		return domain.ErrNotAdmin
	}

	return s.otpSvc.IssueAndDispatch(ctx, user.Email, user)
}

// AdminLoginComplete implements domain.AuthService: step 2. The user is
// re-fetched by email rather than trusted from the step-1 snapshot so the
// token reflects the latest role and active state.
func (s *AuthServiceImpl) AdminLoginComplete(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	ok, err := s.otpSvc.Verify(ctx, email, code)
	if err != nil || !ok {
		if err == nil {
			err = domain.ErrOTPInvalid
		}
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserNotFound
	}

	return s.issueToken(user)
}

// GetUserByID implements domain.AuthService.
func (s *AuthServiceImpl) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *AuthServiceImpl) issueToken(user *domain.User) (*domain.AuthResult, error) {
	token, ttl, err := s.tokenSvc.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(ttl / time.Second),
	}, nil
}

func (s *AuthServiceImpl) isAllowedAdminDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	emailDomain := strings.ToLower(email[at+1:])
	for _, d := range s.adminDomains {
		if emailDomain == d {
			return true
		}
	}
	return false
}
