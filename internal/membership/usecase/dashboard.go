package usecase

import (
	"context"
	"log/slog"

	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type DashboardInput struct{}

type DashboardOutput struct {
	TotalMembers int64
	Active       int64
	Pending      int64
	Inactive     int64
	Rejected     int64
	ExpiringSoon int64
}

func (s *Usecase) Dashboard(ctx context.Context, _ DashboardInput) (*DashboardOutput, error) {
	ctx, span := s.startSpan(ctx, "Dashboard")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, authObjectMembership, authActionRead); err != nil {
		return nil, err
	}

	expiringDays := s.cfg.GetInt32("modules.membership.expiring_window_days")
	if expiringDays <= 0 {
		expiringDays = 30
	}

	stats, err := s.repoDB.GetDashboard(ctx, expiringDays)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get dashboard", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DashboardOutput{
		TotalMembers: stats.TotalMembers,
		Active:       stats.Active,
		Pending:      stats.Pending,
		Inactive:     stats.Inactive,
		Rejected:     stats.Rejected,
		ExpiringSoon: stats.ExpiringSoon,
	}, nil
}
