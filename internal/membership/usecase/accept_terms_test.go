package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func TestAcceptTerms(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("FirstAccept", func(t *testing.T) {
		// Arrange
		var upserted entity.AcceptTermsMembership
		db := &stubDB{
			acceptTermsFn: func(_ context.Context, in entity.AcceptTermsMembership) (string, error) {
				upserted = in
				return in.MembershipNumber, nil
			},
		}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{}, now)

		// Act
		out, err := uc.AcceptTerms(memberContext(42), AcceptTermsInput{Accepted: true})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.StatusActive {
			t.Fatalf("expected ACTIVE, got %s", out.Status)
		}
		if !out.ValidTill.Equal(now.AddDate(1, 0, 0)) {
			t.Fatalf("expected one year validity, got %s", out.ValidTill)
		}
		if !strings.HasPrefix(out.MembershipNumber, "MEM-") {
			t.Fatalf("expected MEM- prefixed number, got %q", out.MembershipNumber)
		}
		if upserted.MemberID != 42 {
			t.Fatalf("expected upsert for member 42, got %+v", upserted)
		}
	})

	t.Run("RepeatKeepsOriginalNumber", func(t *testing.T) {
		// Arrange
		db := &stubDB{
			acceptTermsFn: func(context.Context, entity.AcceptTermsMembership) (string, error) {
				return "MEM-1", nil
			},
		}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{}, now)

		// Act
		out, err := uc.AcceptTerms(memberContext(42), AcceptTermsInput{Accepted: true})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.MembershipNumber != "MEM-1" {
			t.Fatalf("expected the stored number to win, got %q", out.MembershipNumber)
		}
	})

	t.Run("NotAccepted", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubAuthz{}, now)

		// Act
		_, err := uc.AcceptTerms(memberContext(42), AcceptTermsInput{Accepted: false})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeInvalidInput {
			t.Fatalf("expected invalid input, got %v", err)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubAuthz{}, now)

		// Act
		_, err := uc.AcceptTerms(context.Background(), AcceptTermsInput{Accepted: true})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})
}
