package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type EnrollInput struct {
	Name   string `validate:"required,min=3,max=100,alphaspace"`
	Mobile string `validate:"required,mobile"`
}

type EnrollOutput struct {
	MemberID         int64
	MembershipID     int64
	MembershipNumber string
	Status           entity.Status
}

// Enroll creates a pending membership on behalf of an administrator,
// creating the member record as well when the mobile number is new.
func (s *Usecase) Enroll(ctx context.Context, in EnrollInput) (*EnrollOutput, error) {
	ctx, span := s.startSpan(ctx, "Enroll")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, authObjectMember, authActionManage); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Mobile = strings.ToLower(strings.TrimSpace(in.Mobile))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	memberID, err := s.repoDB.GetMemberIDByMobile(ctx, in.Mobile)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get member by mobile", "mobile", in.Mobile, "error", err)
		return nil, goerror.NewServer(err)
	}
	if errors.Is(err, goerror.ErrNotFound) {
		memberID = s.uid.Generate()
	}

	enrollment := entity.NewEnrollment{
		MemberID:         memberID,
		MemberName:       in.Name,
		MemberMobile:     in.Mobile,
		MembershipID:     s.uid.Generate(),
		MembershipNumber: s.membershipNumber(),
		JoinedDate:       s.clock.Now(),
	}

	if err := s.repoDB.CreateEnrollment(ctx, enrollment); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Member already has a membership", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create enrollment", "mobile", in.Mobile, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &EnrollOutput{
		MemberID:         enrollment.MemberID,
		MembershipID:     enrollment.MembershipID,
		MembershipNumber: enrollment.MembershipNumber,
		Status:           entity.StatusPending,
	}, nil
}
