package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type TransitionInput struct {
	MembershipID int64         `validate:"required"`
	Action       entity.Action `validate:"required"`
}

type TransitionOutput struct {
	MembershipID int64
	Status       entity.Status
	ValidTill    *time.Time
}

func (s *Usecase) Transition(ctx context.Context, in TransitionInput) (*TransitionOutput, error) {
	ctx, span := s.startSpan(ctx, "Transition")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, authObjectMembership, authActionManage); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	mm, err := s.repoDB.GetMembershipMemberByID(ctx, in.MembershipID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Membership not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get membership by id", "membership_id", in.MembershipID, "error", err)
		return nil, goerror.NewServer(err)
	}

	newStatus, ok := entity.NextStatus(mm.Status, in.Action)
	if !ok {
		return nil, goerror.NewBusiness(
			fmt.Sprintf("Cannot %s a membership in status %s", in.Action, mm.Status),
			goerror.CodeConflict,
		)
	}

	validTill, err := s.nextValidTill(mm.Membership, in.Action)
	if err != nil {
		slog.ErrorContext(ctx, "membership valid_till invariant violated",
			"membership_id", mm.ID, "status", mm.Status.String(), "action", in.Action.String())
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.TransitionMembership(ctx, entity.TransitionMembership{
		ID:        mm.ID,
		OldStatus: mm.Status,
		NewStatus: newStatus,
		ValidTill: validTill,
	}); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			// status moved under us; the guarded update refused to apply
			return nil, goerror.NewBusiness(
				fmt.Sprintf("Cannot %s a membership in status %s", in.Action, mm.Status),
				goerror.CodeConflict,
			)
		}
		slog.ErrorContext(ctx, "failed to repo transition membership", "membership_id", mm.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	validTillStr := ""
	if validTill != nil {
		validTillStr = validTill.Format(time.RFC3339)
	}
	if err := s.repoMessaging.PublishMembershipTransitioned(ctx, MembershipTransitionedEvent{
		MembershipID: mm.ID,
		MemberID:     mm.MemberID,
		Email:        mm.MemberEmail,
		Name:         mm.MemberName,
		Action:       in.Action,
		OldStatus:    mm.Status,
		NewStatus:    newStatus,
		ValidTill:    validTillStr,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish membership transitioned", "membership_id", mm.ID, "error", err)
	}

	return &TransitionOutput{
		MembershipID: mm.ID,
		Status:       newStatus,
		ValidTill:    validTill,
	}, nil
}

var errValidTillMissing = errors.New("membership: active membership without valid_till")

// nextValidTill computes the validity date the action produces. Extending an
// active membership adds a calendar year to the current expiry; approval and
// reactivation start a fresh year from now; everything else clears it.
func (s *Usecase) nextValidTill(m entity.Membership, act entity.Action) (*time.Time, error) {
	switch act {
	case entity.ActionApprove, entity.ActionReactivate:
		vt := s.clock.Now().AddDate(1, 0, 0)
		return &vt, nil

	case entity.ActionExtend:
		if m.ValidTill == nil {
			return nil, errValidTillMissing
		}
		vt := m.ValidTill.AddDate(1, 0, 0)
		return &vt, nil

	default:
		return nil, nil
	}
}
