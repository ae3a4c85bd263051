package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type AcceptTermsInput struct {
	Accepted bool
}

type AcceptTermsOutput struct {
	MembershipNumber string
	Status           entity.Status
	ValidTill        time.Time
}

// AcceptTerms activates the caller's membership. The first call creates it
// directly ACTIVE with a fresh membership number; later calls re-activate
// with a fresh validity window while the number stays untouched.
func (s *Usecase) AcceptTerms(ctx context.Context, in AcceptTermsInput) (*AcceptTermsOutput, error) {
	ctx, span := s.startSpan(ctx, "AcceptTerms")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if !in.Accepted {
		return nil, goerror.NewInvalidInput(nil, "accepted", "terms must be accepted")
	}

	now := s.clock.Now()
	validTill := now.AddDate(1, 0, 0)

	// the store keeps the original number on conflict, so the returned value
	// is authoritative even when the fresh one is discarded
	number, err := s.repoDB.AcceptTermsMembership(ctx, entity.AcceptTermsMembership{
		ID:               s.uid.Generate(),
		MemberID:         clm.UserID,
		MembershipNumber: s.membershipNumber(),
		JoinedDate:       now,
		ValidTill:        validTill,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo accept terms membership", "member_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AcceptTermsOutput{
		MembershipNumber: number,
		Status:           entity.StatusActive,
		ValidTill:        validTill,
	}, nil
}
