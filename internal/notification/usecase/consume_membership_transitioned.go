package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type ConsumeMembershipTransitionedInput struct {
	MembershipID int64  `validate:"required,gt=0"`
	MemberID     int64  `validate:"required,gt=0"`
	Email        string `validate:"omitempty,email"`
	Name         string `validate:"required"`
	Action       string `validate:"required"`
	NewStatus    string `validate:"required"`
	ValidTill    string
}

func (s *Usecase) ConsumeMembershipTransitioned(ctx context.Context, in ConsumeMembershipTransitionedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeMembershipTransitioned")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	body := fmt.Sprintf("Hi %s,\n\nYour membership status is now %s.\n", in.Name, in.NewStatus)
	if in.ValidTill != "" {
		body += fmt.Sprintf("It is valid until %s.\n", in.ValidTill)
	}

	s.sendEmail(ctx, in.Email, "Your membership was updated", body)

	return nil
}
