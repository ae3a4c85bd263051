package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func TestLogin(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cache := func() *stubCache {
		return &stubCache{
			getFn: func(context.Context, string) (*entity.OtpChallenge, error) {
				return &entity.OtpChallenge{
					Identifier: "9876543210",
					Code:       "123456",
					IssuedAt:   now.Add(-time.Minute),
					ExpiresAt:  now.Add(9 * time.Minute),
				}, nil
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		var lastLoginAt time.Time
		db := &stubDB{
			getByMobileFn: func(context.Context, string) (*entity.Member, error) {
				return &entity.Member{
					ID:              42,
					Mobile:          "9876543210",
					Name:            "Jane Doe",
					Email:           "jane@example.com",
					ProfileComplete: true,
				}, nil
			},
			updateLastLoginFn: func(_ context.Context, id int64, at time.Time) error {
				if id != 42 {
					t.Errorf("expected last login update for member 42, got %d", id)
				}
				lastLoginAt = at
				return nil
			},
		}
		uc := newTestUsecase(t, db, cache(), &stubSMS{}, &stubMessaging{}, now)

		// Act
		out, err := uc.Login(context.Background(), LoginInput{Mobile: "9876543210", Code: "123456"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.Name != "Jane Doe" || !out.ProfileComplete {
			t.Fatalf("unexpected login output: %+v", out)
		}
		if !lastLoginAt.Equal(now) {
			t.Fatalf("expected last login stamped at %s, got %s", now, lastLoginAt)
		}
	})

	t.Run("MobileNotRegistered", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, cache(), &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.Login(context.Background(), LoginInput{Mobile: "9876543210", Code: "123456"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("WrongCode", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, cache(), &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.Login(context.Background(), LoginInput{Mobile: "9876543210", Code: "999999"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})
}
