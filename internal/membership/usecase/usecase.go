package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/authz"
	"github.com/rkarmani/memberd/internal/pkg/clock"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/goroutine"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// Authorization objects and actions for administrative operations.
const (
	authObjectMembership = "membership"
	authObjectMember     = "member"

	authActionManage = "manage"
	authActionRead   = "read"
)

type MembershipTransitionedEvent struct {
	MembershipID int64
	MemberID     int64
	Email        string
	Name         string
	Action       entity.Action
	OldStatus    entity.Status
	NewStatus    entity.Status
	ValidTill    string
}

type repoMessaging interface {
	PublishMembershipTransitioned(ctx context.Context, msg MembershipTransitionedEvent) error
}

type repoDB interface {
	GetMembershipMemberByID(ctx context.Context, id int64) (*entity.MembershipMember, error)
	GetMembershipByMemberID(ctx context.Context, memberID int64) (*entity.Membership, error)
	GetMemberIDByMobile(ctx context.Context, mobile string) (int64, error)
	GetMemberList(ctx context.Context) ([]entity.MemberRow, error)
	GetDashboard(ctx context.Context, expiringDays int32) (*entity.DashboardStats, error)

	CreateMembership(ctx context.Context, in entity.NewMembership) error
	CreateEnrollment(ctx context.Context, in entity.NewEnrollment) error

	TransitionMembership(ctx context.Context, in entity.TransitionMembership) error
	AcceptTermsMembership(ctx context.Context, in entity.AcceptTermsMembership) (string, error)

	DeleteMembership(ctx context.Context, id int64) error
	DeleteMemberCascade(ctx context.Context, memberID int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	authz         authz.Authorizer
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Authorizer    authz.Authorizer
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		authz:         dep.Authorizer,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("membership.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := s.authz.Authorize(ctx, clm.UserEmail, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "subject", clm.UserEmail, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}

func (s *Usecase) membershipNumber() string {
	return "MEM-" + strconv.FormatInt(s.uid.Generate(), 10)
}
