package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func TestOtpRequest(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("IssueFresh", func(t *testing.T) {
		// Arrange
		var stored entity.OtpChallenge
		cache := &stubCache{
			createFn: func(_ context.Context, ch entity.OtpChallenge, ttl time.Duration) (bool, error) {
				stored = ch
				if ttl != 10*time.Minute {
					t.Errorf("expected ttl 10m, got %s", ttl)
				}
				return true, nil
			},
		}
		sms := &stubSMS{}
		uc := newTestUsecase(t, &stubDB{}, cache, sms, &stubMessaging{}, now)

		// Act
		out, err := uc.OtpRequest(context.Background(), OtpRequestInput{Identifier: "  9876543210 "})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.OtpRequestStatusIssued {
			t.Fatalf("expected status ISSUED, got %s", out.Status)
		}
		if stored.Identifier != "9876543210" {
			t.Fatalf("expected normalized identifier, got %q", stored.Identifier)
		}
		if len(stored.Code) != 6 {
			t.Fatalf("expected 6-digit code, got %q", stored.Code)
		}
		if !stored.ExpiresAt.Equal(now.Add(10 * time.Minute)) {
			t.Fatalf("expected expiry at issue+10m, got %s", stored.ExpiresAt)
		}
		if len(sms.bodies) != 1 || !strings.Contains(sms.bodies[0], stored.Code) {
			t.Fatalf("expected sms carrying the code, got %v", sms.bodies)
		}
		if !strings.Contains(sms.bodies[0], "10 minutes") {
			t.Fatalf("expected sms naming the validity, got %q", sms.bodies[0])
		}
	})

	t.Run("RejectedDuringCooldown", func(t *testing.T) {
		// Arrange
		cache := &stubCache{
			getFn: func(context.Context, string) (*entity.OtpChallenge, error) {
				return &entity.OtpChallenge{
					Identifier: "9876543210",
					Code:       "123456",
					IssuedAt:   now.Add(-30 * time.Second),
					ExpiresAt:  now.Add(9*time.Minute + 30*time.Second),
				}, nil
			},
		}
		sms := &stubSMS{}
		uc := newTestUsecase(t, &stubDB{}, cache, sms, &stubMessaging{}, now)

		// Act
		_, err := uc.OtpRequest(context.Background(), OtpRequestInput{Identifier: "9876543210"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected goerror, got %v", err)
		}
		if gerr.Code() != goerror.CodeTooManyRequest {
			t.Fatalf("expected too many requests, got %s", gerr.Code())
		}
		if gerr.RetryAfter() != 30*time.Second {
			t.Fatalf("expected retry after 30s, got %s", gerr.RetryAfter())
		}
		if len(sms.bodies) != 0 {
			t.Fatalf("expected no sms during cooldown, got %v", sms.bodies)
		}
	})

	t.Run("ResentAfterCooldown", func(t *testing.T) {
		// Arrange
		var created bool
		cache := &stubCache{
			getFn: func(context.Context, string) (*entity.OtpChallenge, error) {
				return &entity.OtpChallenge{
					Identifier: "9876543210",
					Code:       "654321",
					IssuedAt:   now.Add(-2 * time.Minute),
					ExpiresAt:  now.Add(8 * time.Minute),
				}, nil
			},
			createFn: func(context.Context, entity.OtpChallenge, time.Duration) (bool, error) {
				created = true
				return true, nil
			},
		}
		sms := &stubSMS{}
		uc := newTestUsecase(t, &stubDB{}, cache, sms, &stubMessaging{}, now)

		// Act
		out, err := uc.OtpRequest(context.Background(), OtpRequestInput{Identifier: "9876543210"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.OtpRequestStatusResent {
			t.Fatalf("expected status RESENT, got %s", out.Status)
		}
		if created {
			t.Fatalf("expected live challenge to be reused, not replaced")
		}
		if len(sms.bodies) != 1 || !strings.Contains(sms.bodies[0], "654321") {
			t.Fatalf("expected sms carrying the original code, got %v", sms.bodies)
		}
	})

	t.Run("LostCreateRace", func(t *testing.T) {
		// Arrange
		calls := 0
		cache := &stubCache{
			getFn: func(context.Context, string) (*entity.OtpChallenge, error) {
				calls++
				if calls == 1 {
					return nil, goerror.ErrNotFound
				}
				return &entity.OtpChallenge{
					Identifier: "9876543210",
					Code:       "111222",
					IssuedAt:   now,
					ExpiresAt:  now.Add(10 * time.Minute),
				}, nil
			},
			createFn: func(context.Context, entity.OtpChallenge, time.Duration) (bool, error) {
				return false, nil
			},
		}
		uc := newTestUsecase(t, &stubDB{}, cache, &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.OtpRequest(context.Background(), OtpRequestInput{Identifier: "9876543210"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeTooManyRequest {
			t.Fatalf("expected rate limit after losing the race, got %v", err)
		}
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		// Arrange
		sms := &stubSMS{err: errors.New("gateway down")}
		uc := newTestUsecase(t, &stubDB{}, &stubCache{}, sms, &stubMessaging{}, now)

		// Act
		_, err := uc.OtpRequest(context.Background(), OtpRequestInput{Identifier: "9876543210"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected goerror, got %v", err)
		}
		if gerr.Code() != goerror.CodeDeliveryFailure {
			t.Fatalf("expected delivery failure, got %s", gerr.Code())
		}
	})

	t.Run("InvalidIdentifier", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubCache{}, &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.OtpRequest(context.Background(), OtpRequestInput{Identifier: "not-a-number"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInvalidInput {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})
}
