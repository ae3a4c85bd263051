package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type LoginInput struct {
	Mobile string `validate:"required,mobile"`
	Code   string `validate:"required,len=6,numeric"`
}

type LoginOutput struct {
	AccessToken     string
	Name            string
	ProfileComplete bool
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Mobile = normalizeIdentifier(in.Mobile)
	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.consumeChallenge(ctx, in.Mobile, in.Code); err != nil {
		return nil, err
	}

	member, err := s.repoDB.GetMemberByMobile(ctx, in.Mobile)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "member not found", "mobile", in.Mobile)
		return nil, goerror.NewBusiness("Mobile number not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get member by mobile", "mobile", in.Mobile, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateMemberLastLogin(ctx, member.ID, s.clock.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to update member last login", "member_id", member.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(member.ID, member.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "member_id", member.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		AccessToken:     token,
		Name:            member.Name,
		ProfileComplete: member.ProfileComplete,
	}, nil
}
