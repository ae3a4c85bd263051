package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/membership/entity"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
	"github.com/rkarmani/memberd/internal/pkg/validator"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeNumberID struct{ id int64 }

func (f *fakeNumberID) Generate() int64 {
	f.id++
	return f.id
}

type stubAuthz struct {
	allow bool
	err   error
}

func (s *stubAuthz) Authorize(context.Context, string, string, string) (bool, error) {
	return s.allow, s.err
}

type stubMessaging struct {
	events []MembershipTransitionedEvent
}

func (s *stubMessaging) PublishMembershipTransitioned(_ context.Context, msg MembershipTransitionedEvent) error {
	s.events = append(s.events, msg)
	return nil
}

type stubDB struct {
	getMembershipMemberFn func(ctx context.Context, id int64) (*entity.MembershipMember, error)
	getByMemberIDFn       func(ctx context.Context, memberID int64) (*entity.Membership, error)
	getMemberIDFn         func(ctx context.Context, mobile string) (int64, error)
	getMemberListFn       func(ctx context.Context) ([]entity.MemberRow, error)
	getDashboardFn        func(ctx context.Context, expiringDays int32) (*entity.DashboardStats, error)
	createMembershipFn    func(ctx context.Context, in entity.NewMembership) error
	createEnrollmentFn    func(ctx context.Context, in entity.NewEnrollment) error
	transitionFn          func(ctx context.Context, in entity.TransitionMembership) error
	acceptTermsFn         func(ctx context.Context, in entity.AcceptTermsMembership) (string, error)
	deleteMembershipFn    func(ctx context.Context, id int64) error
	deleteMemberFn        func(ctx context.Context, memberID int64) error
}

func (s *stubDB) GetMembershipMemberByID(ctx context.Context, id int64) (*entity.MembershipMember, error) {
	if s.getMembershipMemberFn == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getMembershipMemberFn(ctx, id)
}

func (s *stubDB) GetMembershipByMemberID(ctx context.Context, memberID int64) (*entity.Membership, error) {
	if s.getByMemberIDFn == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getByMemberIDFn(ctx, memberID)
}

func (s *stubDB) GetMemberIDByMobile(ctx context.Context, mobile string) (int64, error) {
	if s.getMemberIDFn == nil {
		return 0, goerror.ErrNotFound
	}
	return s.getMemberIDFn(ctx, mobile)
}

func (s *stubDB) GetMemberList(ctx context.Context) ([]entity.MemberRow, error) {
	if s.getMemberListFn == nil {
		return nil, nil
	}
	return s.getMemberListFn(ctx)
}

func (s *stubDB) GetDashboard(ctx context.Context, expiringDays int32) (*entity.DashboardStats, error) {
	if s.getDashboardFn == nil {
		return &entity.DashboardStats{}, nil
	}
	return s.getDashboardFn(ctx, expiringDays)
}

func (s *stubDB) CreateMembership(ctx context.Context, in entity.NewMembership) error {
	if s.createMembershipFn == nil {
		return nil
	}
	return s.createMembershipFn(ctx, in)
}

func (s *stubDB) CreateEnrollment(ctx context.Context, in entity.NewEnrollment) error {
	if s.createEnrollmentFn == nil {
		return nil
	}
	return s.createEnrollmentFn(ctx, in)
}

func (s *stubDB) TransitionMembership(ctx context.Context, in entity.TransitionMembership) error {
	if s.transitionFn == nil {
		return nil
	}
	return s.transitionFn(ctx, in)
}

func (s *stubDB) AcceptTermsMembership(ctx context.Context, in entity.AcceptTermsMembership) (string, error) {
	if s.acceptTermsFn == nil {
		return in.MembershipNumber, nil
	}
	return s.acceptTermsFn(ctx, in)
}

func (s *stubDB) DeleteMembership(ctx context.Context, id int64) error {
	if s.deleteMembershipFn == nil {
		return nil
	}
	return s.deleteMembershipFn(ctx, id)
}

func (s *stubDB) DeleteMemberCascade(ctx context.Context, memberID int64) error {
	if s.deleteMemberFn == nil {
		return nil
	}
	return s.deleteMemberFn(ctx, memberID)
}

func newTestUsecase(t *testing.T, db *stubDB, msg *stubMessaging, az *stubAuthz, now time.Time) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to init validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  membership:\n    expiring_window_days: 30\n"))
	if err != nil {
		t.Fatalf("failed to init config: %v", err)
	}

	return New(Dependency{
		RepoDB:        db,
		RepoMessaging: msg,
		Validator:     v10,
		Config:        cfg,
		Authorizer:    az,
		UID:           &fakeNumberID{id: 500},
		Clock:         &fakeClock{now: now},
		Instrument:    instrument.NewNoop(),
	})
}

func adminContext() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 7, UserEmail: "admin@example.com"})
}

func memberContext(id int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: id, UserEmail: "member@example.com"})
}
