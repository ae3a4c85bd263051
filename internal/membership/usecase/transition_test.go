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

func TestTransition(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	membershipIn := func(status entity.Status, validTill *time.Time) func(context.Context, int64) (*entity.MembershipMember, error) {
		return func(context.Context, int64) (*entity.MembershipMember, error) {
			return &entity.MembershipMember{
				Membership: entity.Membership{
					ID:        10,
					MemberID:  42,
					Status:    status,
					ValidTill: validTill,
				},
				MemberName:  "Jane Doe",
				MemberEmail: "jane@example.com",
			}, nil
		}
	}

	t.Run("ApprovePending", func(t *testing.T) {
		// Arrange
		var applied entity.TransitionMembership
		db := &stubDB{
			getMembershipMemberFn: membershipIn(entity.StatusPending, nil),
			transitionFn: func(_ context.Context, in entity.TransitionMembership) error {
				applied = in
				return nil
			},
		}
		msg := &stubMessaging{}
		uc := newTestUsecase(t, db, msg, &stubAuthz{allow: true}, now)

		// Act
		out, err := uc.Transition(adminContext(), TransitionInput{MembershipID: 10, Action: entity.ActionApprove})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.StatusActive {
			t.Fatalf("expected ACTIVE, got %s", out.Status)
		}
		wantTill := now.AddDate(1, 0, 0)
		if out.ValidTill == nil || !out.ValidTill.Equal(wantTill) {
			t.Fatalf("expected valid till %s, got %v", wantTill, out.ValidTill)
		}
		if applied.OldStatus != entity.StatusPending || applied.NewStatus != entity.StatusActive {
			t.Fatalf("expected guarded update pending->active, got %+v", applied)
		}
		if len(msg.events) != 1 || msg.events[0].NewStatus != entity.StatusActive {
			t.Fatalf("expected transitioned event, got %+v", msg.events)
		}
	})

	t.Run("ExtendActiveAddsCalendarYear", func(t *testing.T) {
		// Arrange
		current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		db := &stubDB{getMembershipMemberFn: membershipIn(entity.StatusActive, &current)}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		out, err := uc.Transition(adminContext(), TransitionInput{MembershipID: 10, Action: entity.ActionExtend})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		if out.ValidTill == nil || !out.ValidTill.Equal(want) {
			t.Fatalf("expected extension to %s, got %v", want, out.ValidTill)
		}
		if out.Status != entity.StatusActive {
			t.Fatalf("expected membership to stay ACTIVE, got %s", out.Status)
		}
	})

	t.Run("RejectClearsValidTill", func(t *testing.T) {
		// Arrange
		db := &stubDB{getMembershipMemberFn: membershipIn(entity.StatusPending, nil)}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		out, err := uc.Transition(adminContext(), TransitionInput{MembershipID: 10, Action: entity.ActionReject})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entity.StatusRejected || out.ValidTill != nil {
			t.Fatalf("expected REJECTED without validity, got %+v", out)
		}
	})

	t.Run("ExtendPendingRejected", func(t *testing.T) {
		// Arrange
		db := &stubDB{getMembershipMemberFn: membershipIn(entity.StatusPending, nil)}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		_, err := uc.Transition(adminContext(), TransitionInput{MembershipID: 10, Action: entity.ActionExtend})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
		if !strings.Contains(gerr.Msg(), "extend") || !strings.Contains(gerr.Msg(), "PENDING") {
			t.Fatalf("expected message naming action and status, got %q", gerr.Msg())
		}
	})

	t.Run("ConcurrentTransitionConflict", func(t *testing.T) {
		// Arrange
		db := &stubDB{
			getMembershipMemberFn: membershipIn(entity.StatusPending, nil),
			transitionFn: func(context.Context, entity.TransitionMembership) error {
				return goerror.ErrConflict
			},
		}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		_, err := uc.Transition(adminContext(), TransitionInput{MembershipID: 10, Action: entity.ActionApprove})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeConflict {
			t.Fatalf("expected conflict when the status moved underneath, got %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		_, err := uc.Transition(adminContext(), TransitionInput{MembershipID: 99, Action: entity.ActionApprove})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		_, err := uc.Transition(context.Background(), TransitionInput{MembershipID: 10, Action: entity.ActionApprove})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubAuthz{allow: false}, now)

		// Act
		_, err := uc.Transition(memberContext(42), TransitionInput{MembershipID: 10, Action: entity.ActionApprove})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
