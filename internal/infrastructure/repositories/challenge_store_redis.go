package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dheerendra45/news-analyzer/domain"
)

// RedisChallengeStoreImpl implements domain.ChallengeStore on Redis so that
// an OTP issued by one instance can be verified on another. Values carry a
// TTL slightly past the challenge expiry; the expiry check itself stays in
// the OTP service so both stores behave identically.
type RedisChallengeStoreImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisChallengeStore creates a new Redis-backed challenge store.
func NewRedisChallengeStore(client *redis.Client, ttl time.Duration) domain.ChallengeStore {
	return &RedisChallengeStoreImpl{
		client: client,
		prefix: "otp:",
		// Keep the key around past logical expiry so Get can still observe
		// and report the expired state before removal.
		ttl: ttl + time.Minute,
	}
}

// Put implements domain.ChallengeStore.
func (r *RedisChallengeStoreImpl) Put(ctx context.Context, email string, challenge *domain.Challenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}
	return r.client.Set(ctx, r.prefix+email, data, r.ttl).Err()
}

// Get implements domain.ChallengeStore.
func (r *RedisChallengeStoreImpl) Get(ctx context.Context, email string) (*domain.Challenge, error) {
	data, err := r.client.Get(ctx, r.prefix+email).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var challenge domain.Challenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &challenge, nil
}

// Delete implements domain.ChallengeStore.
func (r *RedisChallengeStoreImpl) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.prefix+email).Err()
}

// DeleteExpired implements domain.ChallengeStore. Redis evicts keys by TTL,
// so this is a no-op.
func (r *RedisChallengeStoreImpl) DeleteExpired(ctx context.Context) error {
	return nil
}

var _ domain.ChallengeStore = (*RedisChallengeStoreImpl)(nil)
