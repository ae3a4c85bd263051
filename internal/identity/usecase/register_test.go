package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func TestRegister(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cacheWithCode := func(code string) *stubCache {
		return &stubCache{
			getFn: func(context.Context, string) (*entity.OtpChallenge, error) {
				return &entity.OtpChallenge{
					Identifier: "9876543210",
					Code:       code,
					IssuedAt:   now.Add(-time.Minute),
					ExpiresAt:  now.Add(9 * time.Minute),
				}, nil
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		var created entity.NewMember
		db := &stubDB{
			createFn: func(_ context.Context, in entity.NewMember) error {
				created = in
				return nil
			},
		}
		msg := &stubMessaging{}
		uc := newTestUsecase(t, db, cacheWithCode("123456"), &stubSMS{}, msg, now)

		// Act
		out, err := uc.Register(context.Background(), RegisterInput{
			Mobile: "9876543210",
			Code:   "123456",
			Name:   "Jane Doe",
			Email:  "Jane@Example.com",
		})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" {
			t.Fatalf("expected access token in register response")
		}
		if created.Mobile != "9876543210" || created.Email != "jane@example.com" {
			t.Fatalf("expected normalized member fields, got %+v", created)
		}
		if !created.ProfileComplete {
			t.Fatalf("expected profile complete with name and email")
		}
		if len(msg.events) != 1 || msg.events[0].MemberID != created.ID {
			t.Fatalf("expected registered event for new member, got %+v", msg.events)
		}
	})

	t.Run("ProfileIncompleteWithoutEmail", func(t *testing.T) {
		// Arrange
		var created entity.NewMember
		db := &stubDB{
			createFn: func(_ context.Context, in entity.NewMember) error {
				created = in
				return nil
			},
		}
		uc := newTestUsecase(t, db, cacheWithCode("123456"), &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.Register(context.Background(), RegisterInput{
			Mobile: "9876543210",
			Code:   "123456",
			Name:   "Jane Doe",
		})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ProfileComplete {
			t.Fatalf("expected profile incomplete without email")
		}
	})

	t.Run("MobileAlreadyRegistered", func(t *testing.T) {
		// Arrange
		db := &stubDB{
			getByMobileFn: func(context.Context, string) (*entity.Member, error) {
				return &entity.Member{ID: 1, Mobile: "9876543210"}, nil
			},
		}
		uc := newTestUsecase(t, db, cacheWithCode("123456"), &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.Register(context.Background(), RegisterInput{
			Mobile: "9876543210",
			Code:   "123456",
			Name:   "Jane Doe",
		})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("WrongCodeSkipsCreate", func(t *testing.T) {
		// Arrange
		db := &stubDB{
			createFn: func(context.Context, entity.NewMember) error {
				t.Fatalf("member must not be created with a bad code")
				return nil
			},
		}
		uc := newTestUsecase(t, db, cacheWithCode("123456"), &stubSMS{}, &stubMessaging{}, now)

		// Act
		_, err := uc.Register(context.Background(), RegisterInput{
			Mobile: "9876543210",
			Code:   "000000",
			Name:   "Jane Doe",
		})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})
}
