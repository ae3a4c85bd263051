package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/samber/lo"
)

type MemberListInput struct{}

type MemberListItem struct {
	MemberID         int64
	Name             string
	Mobile           string
	Email            string
	JoinedAt         time.Time
	MembershipID     *int64
	MembershipNumber string
	Status           entity.Status
	ValidTill        *time.Time
}

type MemberListOutput struct {
	Members []MemberListItem
}

func (s *Usecase) MemberList(ctx context.Context, _ MemberListInput) (*MemberListOutput, error) {
	ctx, span := s.startSpan(ctx, "MemberList")
	defer span.End()

	if _, err := s.authenticatedAndAuthorized(ctx, authObjectMember, authActionRead); err != nil {
		return nil, err
	}

	rows, err := s.repoDB.GetMemberList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get member list", "error", err)
		return nil, goerror.NewServer(err)
	}

	members := lo.Map(rows, func(r entity.MemberRow, _ int) MemberListItem {
		return MemberListItem{
			MemberID:         r.MemberID,
			Name:             r.Name,
			Mobile:           r.Mobile,
			Email:            r.Email,
			JoinedAt:         r.MemberCreatedAt,
			MembershipID:     r.MembershipID,
			MembershipNumber: r.MembershipNumber,
			Status:           r.Status,
			ValidTill:        r.ValidTill,
		}
	})

	return &MemberListOutput{Members: members}, nil
}
