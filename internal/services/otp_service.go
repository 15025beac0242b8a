package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
)

// OTPServiceImpl implements domain.OTPService on top of a challenge store
// capability. The store may be process-local or shared; the state machine is
// identical either way.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	store           domain.ChallengeStore
	config          OTPConfig
}

type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// NewOTPService creates a new OTP service.
func NewOTPService(notificationSvc domain.NotificationService, store domain.ChallengeStore, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		store:           store,
		config:          config,
	}
}

// IssueAndDispatch implements domain.OTPService. Any existing challenge for
// the email is overwritten with a fresh code and a zeroed attempt counter.
// If delivery fails the challenge is rolled back: a challenge must never
// exist for a code the user was never sent.
func (s *OTPServiceImpl) IssueAndDispatch(ctx context.Context, email string, user *domain.User) error {
	email = strings.ToLower(email)

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	challenge := &domain.Challenge{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Attempts:  0,
		UserID:    user.ID,
		Username:  user.Username,
	}

	if err := s.store.Put(ctx, email, challenge); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}

	if err := s.notificationSvc.SendOTPEmail(email, user.Username, code, s.config.TTL); err != nil {
		if delErr := s.store.Delete(ctx, email); delErr != nil {
			log.Printf("OTP_ROLLBACK_FAILED: email=%s error=%v", email, delErr)
		}
		return fmt.Errorf("%w: %v", domain.ErrOTPDispatchFailed, err)
	}

	log.Printf("OTP_DISPATCHED: email=%s expires_at=%s", email, challenge.ExpiresAt.UTC().Format(time.RFC3339))
	return nil
}

// Verify implements domain.OTPService. The limit is on attempts, not
// successes: once the counter passes the maximum, even the correct code is
// rejected and the challenge is gone. A correct submission consumes the
// challenge so the code is single use.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (bool, error) {
	email = strings.ToLower(email)

	challenge, err := s.store.Get(ctx, email)
	if err != nil {
		if err == domain.ErrOTPNotFound {
			return false, domain.ErrOTPNotFound
		}
		return false, err
	}

	if challenge.Expired(time.Now()) {
		if err := s.store.Delete(ctx, email); err != nil {
			return false, err
		}
		return false, domain.ErrOTPExpired
	}

	challenge.Attempts++
	if challenge.Attempts > s.config.MaxAttempts {
		if err := s.store.Delete(ctx, email); err != nil {
			return false, err
		}
		return false, domain.ErrOTPMaxAttempts
	}

	if challenge.Code != code {
		// Persist the incremented counter so retries burn attempts.
		if err := s.store.Put(ctx, email, challenge); err != nil {
			return false, err
		}
		return false, domain.ErrOTPInvalid
	}

	if err := s.store.Delete(ctx, email); err != nil {
		return false, err
	}
	return true, nil
}

// SweepExpired implements domain.OTPService.
func (s *OTPServiceImpl) SweepExpired(ctx context.Context) error {
	return s.store.DeleteExpired(ctx)
}

// generateSecureCode draws each digit independently from crypto/rand;
// leading zeros are allowed.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
