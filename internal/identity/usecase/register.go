package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type RegisterInput struct {
	Mobile string `validate:"required,mobile"`
	Code   string `validate:"required,len=6,numeric"`
	Name   string `validate:"required,min=3,max=100,alphaspace"`
	Email  string `validate:"omitempty,email"`
}

type RegisterOutput struct {
	AccessToken string
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Mobile = normalizeIdentifier(in.Mobile)
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.consumeChallenge(ctx, in.Mobile, in.Code); err != nil {
		return nil, err
	}

	if _, err := s.repoDB.GetMemberByMobile(ctx, in.Mobile); err == nil {
		return nil, goerror.NewBusiness("Mobile number already registered", goerror.CodeConflict)
	} else if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get member by mobile", "mobile", in.Mobile, "error", err)
		return nil, goerror.NewServer(err)
	}

	newMember := entity.NewMember{
		ID:              s.uid.Generate(),
		Mobile:          in.Mobile,
		Email:           in.Email,
		Name:            in.Name,
		ProfileComplete: in.Name != "" && in.Email != "",
	}

	if err := s.repoDB.CreateMember(ctx, newMember); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Mobile number already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create member", "mobile", in.Mobile, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishMemberRegistered(ctx, MemberRegisteredEvent{
		MemberID: newMember.ID,
		Mobile:   newMember.Mobile,
		Email:    newMember.Email,
		Name:     newMember.Name,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish member registered", "member_id", newMember.ID, "error", err)
	}

	token, err := s.jwt.Generate(newMember.ID, newMember.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "member_id", newMember.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{AccessToken: token}, nil
}
