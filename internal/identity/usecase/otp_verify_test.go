package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func TestOtpVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	liveChallenge := func(context.Context, string) (*entity.OtpChallenge, error) {
		return &entity.OtpChallenge{
			Identifier: "9876543210",
			Code:       "123456",
			IssuedAt:   now.Add(-time.Minute),
			ExpiresAt:  now.Add(9 * time.Minute),
		}, nil
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		deleted := false
		cache := &stubCache{
			getFn: liveChallenge,
			deleteFn: func(_ context.Context, identifier string) error {
				deleted = identifier == "9876543210"
				return nil
			},
		}
		uc := newTestUsecase(t, &stubDB{}, cache, &stubSMS{}, &stubMessaging{}, now)

		// Act
		err := uc.OtpVerify(context.Background(), OtpVerifyInput{Identifier: "9876543210", Code: " 123456 "})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Fatalf("expected challenge to be retired after success")
		}
	})

	t.Run("WrongCode", func(t *testing.T) {
		// Arrange
		deleted := false
		cache := &stubCache{
			getFn: liveChallenge,
			deleteFn: func(context.Context, string) error {
				deleted = true
				return nil
			},
		}
		uc := newTestUsecase(t, &stubDB{}, cache, &stubSMS{}, &stubMessaging{}, now)

		// Act
		err := uc.OtpVerify(context.Background(), OtpVerifyInput{Identifier: "9876543210", Code: "999999"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if deleted {
			t.Fatalf("expected challenge to stay live after a failed attempt")
		}
	})

	t.Run("ExpiredOrMissing", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubCache{}, &stubSMS{}, &stubMessaging{}, now)

		// Act
		err := uc.OtpVerify(context.Background(), OtpVerifyInput{Identifier: "9876543210", Code: "123456"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})
}
