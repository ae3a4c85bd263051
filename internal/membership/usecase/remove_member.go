package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type RemoveMemberInput struct {
	MemberID int64 `validate:"required"`
}

// RemoveMember deletes a member and cascades to their membership. The
// reverse does not hold: removing a membership keeps the member.
func (s *Usecase) RemoveMember(ctx context.Context, in RemoveMemberInput) error {
	ctx, span := s.startSpan(ctx, "RemoveMember")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, authObjectMember, authActionManage); err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.DeleteMemberCascade(ctx, in.MemberID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Member not found", goerror.CodeNotFound)
		}
		slog.ErrorContext(ctx, "failed to repo delete member", "member_id", in.MemberID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
