package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
)

type ProfileInput struct{}

type ProfileOutput struct {
	ID              int64
	Mobile          string
	Email           string
	Name            string
	PhotoURL        string
	ProfileComplete bool
	LastLoginAt     *time.Time
}

func (s *Usecase) Profile(ctx context.Context, _ ProfileInput) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	member, err := s.authenticatedMember(ctx)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{
		ID:              member.ID,
		Mobile:          member.Mobile,
		Email:           member.Email,
		Name:            member.Name,
		PhotoURL:        member.PhotoURL,
		ProfileComplete: member.ProfileComplete,
		LastLoginAt:     member.LastLoginAt,
	}, nil
}

func (s *Usecase) authenticatedMember(ctx context.Context) (*entity.Member, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	member, err := s.repoDB.GetMemberByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "member not found", "member_id", clm.UserID)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get member by id", "member_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return member, nil
}
