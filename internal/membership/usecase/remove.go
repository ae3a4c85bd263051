package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type RemoveInput struct {
	MembershipID int64 `validate:"required"`
}

// Remove deletes a membership only; the owning member record is kept.
func (s *Usecase) Remove(ctx context.Context, in RemoveInput) error {
	ctx, span := s.startSpan(ctx, "Remove")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, authObjectMembership, authActionManage); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteMembership(ctx, in.MembershipID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Membership not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete membership", "membership_id", in.MembershipID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
