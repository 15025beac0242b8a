package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dheerendra45/news-analyzer/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}

func testChallenge(expiresIn time.Duration) *domain.Challenge {
	return &domain.Challenge{
		Email:     "ops@replaceable.ai",
		Code:      "428519",
		ExpiresAt: time.Now().Add(expiresIn),
		Attempts:  0,
		UserID:    "64a1f0d2e5b3c6a7d8e9f001",
		Username:  "ops",
	}
}

// challengeStores returns both implementations so every case runs against
// each; the OTP service must not be able to tell them apart.
func challengeStores(t *testing.T) map[string]domain.ChallengeStore {
	t.Helper()
	return map[string]domain.ChallengeStore{
		"memory": NewMemoryChallengeStore(),
		"redis":  NewRedisChallengeStore(setupTestRedis(t), 5*time.Minute),
	}
}

func TestChallengeStore_PutAndGet(t *testing.T) {
	for name, store := range challengeStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := testChallenge(5 * time.Minute)

			if err := store.Put(ctx, in.Email, in); err != nil {
				t.Fatalf("put failed: %v", err)
			}

			out, err := store.Get(ctx, in.Email)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if out.Code != in.Code {
				t.Errorf("expected code %s, got %s", in.Code, out.Code)
			}
			if out.UserID != in.UserID {
				t.Errorf("expected user id %s, got %s", in.UserID, out.UserID)
			}
			if out.Attempts != 0 {
				t.Errorf("expected zero attempts, got %d", out.Attempts)
			}
		})
	}
}

func TestChallengeStore_GetMissing(t *testing.T) {
	for name, store := range challengeStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Get(context.Background(), "nobody@replaceable.ai"); !errors.Is(err, domain.ErrOTPNotFound) {
				t.Errorf("expected ErrOTPNotFound, got %v", err)
			}
		})
	}
}

func TestChallengeStore_PutOverwrites(t *testing.T) {
	for name, store := range challengeStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := testChallenge(5 * time.Minute)
			if err := store.Put(ctx, first.Email, first); err != nil {
				t.Fatalf("put failed: %v", err)
			}

			second := testChallenge(5 * time.Minute)
			second.Code = "990011"
			second.Attempts = 0
			if err := store.Put(ctx, second.Email, second); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}

			out, err := store.Get(ctx, first.Email)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if out.Code != "990011" {
				t.Errorf("expected overwritten code, got %s", out.Code)
			}
		})
	}
}

func TestChallengeStore_Delete(t *testing.T) {
	for name, store := range challengeStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := testChallenge(5 * time.Minute)
			if err := store.Put(ctx, in.Email, in); err != nil {
				t.Fatalf("put failed: %v", err)
			}

			if err := store.Delete(ctx, in.Email); err != nil {
				t.Fatalf("delete failed: %v", err)
			}
			if _, err := store.Get(ctx, in.Email); !errors.Is(err, domain.ErrOTPNotFound) {
				t.Errorf("expected ErrOTPNotFound after delete, got %v", err)
			}

			// Deleting an absent key is not an error.
			if err := store.Delete(ctx, in.Email); err != nil {
				t.Errorf("second delete failed: %v", err)
			}
		})
	}
}

func TestMemoryChallengeStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryChallengeStore()

	expired := testChallenge(-time.Minute)
	live := testChallenge(5 * time.Minute)
	live.Email = "live@replaceable.ai"

	if err := store.Put(ctx, expired.Email, expired); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Put(ctx, live.Email, live); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if err := store.DeleteExpired(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if _, err := store.Get(ctx, expired.Email); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("expected expired challenge to be swept, got %v", err)
	}
	if _, err := store.Get(ctx, live.Email); err != nil {
		t.Errorf("expected live challenge to survive, got %v", err)
	}
}

func TestMemoryChallengeStore_CopiesOnPutAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryChallengeStore()

	in := testChallenge(5 * time.Minute)
	if err := store.Put(ctx, in.Email, in); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	// Mutating the caller's copy must not reach the stored challenge.
	in.Attempts = 99
	out, err := store.Get(ctx, in.Email)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out.Attempts != 0 {
		t.Errorf("stored challenge was aliased, attempts=%d", out.Attempts)
	}

	out.Code = "tampered"
	again, err := store.Get(ctx, in.Email)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again.Code != "428519" {
		t.Errorf("returned challenge was aliased, code=%s", again.Code)
	}
}

func TestRedisChallengeStore_KeyHasTTL(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisChallengeStore(client, 5*time.Minute)
	ctx := context.Background()

	in := testChallenge(5 * time.Minute)
	if err := store.Put(ctx, in.Email, in); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	ttl := client.TTL(ctx, "otp:"+in.Email).Val()
	if ttl <= 5*time.Minute {
		t.Errorf("expected TTL past logical expiry, got %v", ttl)
	}
}
