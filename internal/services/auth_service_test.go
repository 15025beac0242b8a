package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/mocks"
)

func newTestAuthService(
	userRepo *mocks.MockUserRepository,
	passwordSvc *mocks.MockPasswordService,
	tokenSvc *mocks.MockTokenService,
	otpSvc *mocks.MockOTPService,
) domain.AuthService {
	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, []string{"replaceable.ai", "attacked.ai"})
}

func validAdmin() *domain.User {
	return &domain.User{
		ID:           "64a1f0d2e5b3c6a7d8e9f001",
		Email:        "ops@replaceable.ai",
		Username:     "ops",
		PasswordHash: "hashed:correct-password",
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func validUser() *domain.User {
	u := validAdmin()
	u.ID = "64a1f0d2e5b3c6a7d8e9f002"
	u.Email = "reader@example.com"
	u.Username = "reader"
	u.Role = domain.RoleUser
	return u
}

func TestAuthServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		username      string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name:       "successful registration",
			email:      "NewUser@Example.com",
			username:   "newuser",
			password:   "securepassword123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {},
			validateUser: func(t *testing.T, user *domain.User) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Email != "newuser@example.com" {
					t.Errorf("expected lower-cased email, got %s", user.Email)
				}
				if user.Role != domain.RoleUser {
					t.Errorf("expected role user, got %s", user.Role)
				}
				if !user.IsActive {
					t.Error("expected user to be active")
				}
				if user.PasswordHash != "hashed:securepassword123" {
					t.Errorf("unexpected password hash %s", user.PasswordHash)
				}
			},
		},
		{
			name:     "email already taken",
			email:    "existing@example.com",
			username: "newuser",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, email, username string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
		{
			name:     "duplicate surfaced by unique index on insert",
			email:    "racer@example.com",
			username: "racer",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrUserAlreadyExists
				}
			},
			expectedError: domain.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)
			svc := newTestAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())

			user, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if user != nil {
					t.Error("expected nil user on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateUser != nil {
				tt.validateUser(t, user)
			}
		})
	}
}

func TestAuthServiceImpl_RegisterAdmin(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		expectedError error
	}{
		{name: "allowed domain", email: "ops@replaceable.ai"},
		{name: "allowed domain is case insensitive", email: "Ops@REPLACEABLE.AI"},
		{name: "second allowed domain", email: "analyst@attacked.ai"},
		{name: "disallowed domain", email: "ops@gmail.com", expectedError: domain.ErrAdminDomainNotAllowed},
		{name: "lookalike suffix rejected", email: "ops@notreplaceable.ai", expectedError: domain.ErrAdminDomainNotAllowed},
		{name: "missing domain part", email: "ops@", expectedError: domain.ErrAdminDomainNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			repoTouched := false
			userRepo.FindByEmailOrUsernameFunc = func(ctx context.Context, email, username string) (*domain.User, error) {
				repoTouched = true
				return nil, domain.ErrUserNotFound
			}
			svc := newTestAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())

			admin, err := svc.RegisterAdmin(context.Background(), tt.email, "ops", "password123")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				// The domain check must run before any store access.
				if repoTouched {
					t.Error("expected no repository access for disallowed domain")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if admin.Role != domain.RoleAdmin {
				t.Errorf("expected role admin, got %s", admin.Role)
			}
		})
	}
}

func TestAuthServiceImpl_Authenticate(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:     "valid credentials",
			password: "correct-password",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
		},
		{
			name:          "unknown account",
			password:      "correct-password",
			setupMocks:    func(userRepo *mocks.MockUserRepository) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "inactive account",
			password: "correct-password",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := validUser()
					u.IsActive = false
					return u, nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)
			svc := newTestAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), mocks.NewMockOTPService())

			user, err := svc.Authenticate(context.Background(), "reader@example.com", tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user == nil || user.Email != "reader@example.com" {
				t.Errorf("unexpected user: %+v", user)
			}
		})
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return validUser(), nil
	}
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.IssueFunc = func(user *domain.User) (string, time.Duration, error) {
		return "signed-token", 30 * time.Minute, nil
	}
	svc := newTestAuthService(userRepo, mocks.NewMockPasswordService(), tokenSvc, mocks.NewMockOTPService())

	result, err := svc.Login(context.Background(), "reader@example.com", "correct-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccessToken != "signed-token" {
		t.Errorf("expected signed-token, got %s", result.AccessToken)
	}
	if result.ExpiresIn != 1800 {
		t.Errorf("expected expires_in 1800, got %d", result.ExpiresIn)
	}
	if result.User.Email != "reader@example.com" {
		t.Errorf("unexpected user in result: %+v", result.User)
	}
}

func TestAuthServiceImpl_AdminLoginStart(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPService)
		expectedError error
		expectOTP     bool
	}{
		{
			name: "admin gets an OTP challenge",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validAdmin(), nil
				}
			},
			expectOTP: true,
		},
		{
			name: "non-admin role is rejected before dispatch",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validUser(), nil
				}
			},
			expectedError: domain.ErrNotAdmin,
		},
		{
			name:          "unknown account",
			setupMocks:    func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name: "dispatch failure propagates",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validAdmin(), nil
				}
				otpSvc.IssueAndDispatchFunc = func(ctx context.Context, email string, user *domain.User) error {
					return domain.ErrOTPDispatchFailed
				}
			},
			expectedError: domain.ErrOTPDispatchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()
			dispatched := false
			otpSvc.IssueAndDispatchFunc = func(ctx context.Context, email string, user *domain.User) error {
				dispatched = true
				return nil
			}
			tt.setupMocks(userRepo, otpSvc)
			svc := newTestAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

			err := svc.AdminLoginStart(context.Background(), "ops@replaceable.ai", "correct-password")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expectOTP && !dispatched {
				t.Error("expected an OTP challenge to be dispatched")
			}
		})
	}
}

func TestAuthServiceImpl_AdminLoginComplete(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockOTPService)
		expectedError error
	}{
		{
			name: "valid code issues a token",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (bool, error) {
					return true, nil
				}
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return validAdmin(), nil
				}
			},
		},
		{
			name: "wrong code",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (bool, error) {
					return false, domain.ErrOTPInvalid
				}
			},
			expectedError: domain.ErrOTPInvalid,
		},
		{
			name: "expired challenge",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (bool, error) {
					return false, domain.ErrOTPExpired
				}
			},
			expectedError: domain.ErrOTPExpired,
		},
		{
			name: "account deleted between steps",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (bool, error) {
					return true, nil
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "account deactivated between steps",
			setupMocks: func(userRepo *mocks.MockUserRepository, otpSvc *mocks.MockOTPService) {
				otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (bool, error) {
					return true, nil
				}
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					u := validAdmin()
					u.IsActive = false
					return u, nil
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			otpSvc := mocks.NewMockOTPService()
			tt.setupMocks(userRepo, otpSvc)
			svc := newTestAuthService(userRepo, mocks.NewMockPasswordService(), mocks.NewMockTokenService(), otpSvc)

			result, err := svc.AdminLoginComplete(context.Background(), "ops@replaceable.ai", "123456")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				if result != nil {
					t.Error("expected nil result on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.AccessToken == "" {
				t.Error("expected an access token")
			}
			if result.User.Role != domain.RoleAdmin {
				t.Errorf("expected admin role in result, got %s", result.User.Role)
			}
		})
	}
}
