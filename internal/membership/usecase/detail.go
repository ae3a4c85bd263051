package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type DetailInput struct{}

type DetailOutput struct {
	MembershipID     int64
	MembershipNumber string
	Status           entity.Status
	JoinedDate       time.Time
	ValidTill        *time.Time
	TermsAccepted    bool
}

func (s *Usecase) Detail(ctx context.Context, _ DetailInput) (*DetailOutput, error) {
	ctx, span := s.startSpan(ctx, "Detail")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	ms, err := s.repoDB.GetMembershipByMemberID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("No membership found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get membership by member id", "member_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DetailOutput{
		MembershipID:     ms.ID,
		MembershipNumber: ms.MembershipNumber,
		Status:           ms.Status,
		JoinedDate:       ms.JoinedDate,
		ValidTill:        ms.ValidTill,
		TermsAccepted:    ms.TermsAccepted,
	}, nil
}
