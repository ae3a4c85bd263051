package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type ConsumeMemberRegisteredInput struct {
	MemberID int64  `validate:"required,gt=0"`
	Mobile   string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Name     string `validate:"required"`
}

func (s *Usecase) ConsumeMemberRegistered(ctx context.Context, in ConsumeMemberRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeMemberRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	appName := s.cfg.GetString("app.name")
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to %s! Your account is ready.\n"+
			"Accept the membership terms in the app to activate your membership.\n",
		in.Name, appName,
	)

	s.sendEmail(ctx, in.Email, "Welcome to "+appName, body)

	return nil
}
