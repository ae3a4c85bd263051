package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type ProfileUpdateInput struct {
	Name  string `validate:"required,min=3,max=100,alphaspace"`
	Email string `validate:"omitempty,email"`
}

func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	member, err := s.authenticatedMember(ctx)
	if err != nil {
		return err
	}

	if err := s.repoDB.UpdateMemberProfile(ctx, entity.UpdateProfile{
		ID:              member.ID,
		Name:            in.Name,
		Email:           in.Email,
		ProfileComplete: in.Name != "" && in.Email != "",
	}); err != nil {
		slog.ErrorContext(ctx, "failed to update member profile", "member_id", member.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
