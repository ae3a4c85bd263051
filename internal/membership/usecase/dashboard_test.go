package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

func TestDashboard(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Stats", func(t *testing.T) {
		// Arrange
		var window int32
		db := &stubDB{
			getDashboardFn: func(_ context.Context, expiringDays int32) (*entity.DashboardStats, error) {
				window = expiringDays
				return &entity.DashboardStats{
					TotalMembers: 5,
					Active:       2,
					Pending:      1,
					Inactive:     1,
					Rejected:     1,
					ExpiringSoon: 1,
				}, nil
			},
		}
		uc := newTestUsecase(t, db, &stubMessaging{}, &stubAuthz{allow: true}, now)

		// Act
		out, err := uc.Dashboard(adminContext(), DashboardInput{})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if window != 30 {
			t.Fatalf("expected 30 day expiring window, got %d", window)
		}
		if out.TotalMembers != 5 || out.Active != 2 || out.Pending != 1 || out.ExpiringSoon != 1 {
			t.Fatalf("unexpected stats: %+v", out)
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		// Arrange
		uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubAuthz{allow: false}, now)

		// Act
		_, err := uc.Dashboard(memberContext(42), DashboardInput{})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeForbidden {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
