package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// ChallengeStore is the keyed TTL capability backing the OTP service. The
// default implementation is process-local; a shared store must be used when
// verify requests can land on a different instance than the issue.
type ChallengeStore interface {
	Put(ctx context.Context, email string, challenge *Challenge) error
	Get(ctx context.Context, email string) (*Challenge, error)
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) error
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*User, error)
	RegisterAdmin(ctx context.Context, email, username, password string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	AdminLoginStart(ctx context.Context, email, password string) error
	AdminLoginComplete(ctx context.Context, email, code string) (*AuthResult, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}

// OTPService defines the OTP challenge lifecycle.
type OTPService interface {
	IssueAndDispatch(ctx context.Context, email string, user *User) error
	Verify(ctx context.Context, email, code string) (bool, error)
	SweepExpired(ctx context.Context) error
}

// PasswordService defines password operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations.
type TokenService interface {
	Issue(user *User) (string, time.Duration, error)
	Verify(token string) (*TokenClaims, error)
}

// NotificationService defines notification delivery operations.
type NotificationService interface {
	SendOTPEmail(to, username, code string, validity time.Duration) error
}

// NewsRepository defines news article data access operations.
type NewsRepository interface {
	Create(ctx context.Context, news *News) error
	FindByID(ctx context.Context, id string) (*News, error)
	List(ctx context.Context, filter NewsFilter, page Page) ([]*News, int64, error)
	Update(ctx context.Context, news *News) error
	Delete(ctx context.Context, id string) error
}

// ReportRepository defines report data access operations.
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	FindByID(ctx context.Context, id string) (*Report, error)
	List(ctx context.Context, filter ReportFilter, page Page) ([]*Report, int64, error)
	Update(ctx context.Context, report *Report) error
	Delete(ctx context.Context, id string) error
}

// CardRepository defines intelligence card data access operations.
type CardRepository interface {
	Create(ctx context.Context, card *IntelligenceCard) error
	FindByID(ctx context.Context, id string) (*IntelligenceCard, error)
	List(ctx context.Context, filter CardFilter, page Page) ([]*IntelligenceCard, int64, error)
	Update(ctx context.Context, card *IntelligenceCard) error
	Delete(ctx context.Context, id string) error
}

// SubscriptionRepository defines newsletter subscription data access.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *Subscription) error
	List(ctx context.Context, page Page) ([]*Subscription, int64, error)
}
