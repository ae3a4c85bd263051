package usecase

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
	"github.com/rkarmani/memberd/internal/pkg/validator"
)

const testConfigYAML = `
modules:
  identity:
    otp_cooldown_seconds: 60
    otp_validity_minutes: 10
`

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeNumberID struct{ id int64 }

func (f *fakeNumberID) Generate() int64 {
	f.id++
	return f.id
}

type fakeStringID struct{}

func (fakeStringID) Generate() string { return "00000000-0000-0000-0000-000000000000" }

type fakeJWT struct{ err error }

func (f fakeJWT) Generate(uid int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + strconv.FormatInt(uid, 10), nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type stubDB struct {
	getByMobileFn     func(ctx context.Context, mobile string) (*entity.Member, error)
	getByIDFn         func(ctx context.Context, id int64) (*entity.Member, error)
	createFn          func(ctx context.Context, in entity.NewMember) error
	updateProfileFn   func(ctx context.Context, in entity.UpdateProfile) error
	updatePhotoFn     func(ctx context.Context, id int64, photoURL string) error
	updateLastLoginFn func(ctx context.Context, id int64, at time.Time) error
}

func (s *stubDB) GetMemberByMobile(ctx context.Context, mobile string) (*entity.Member, error) {
	if s.getByMobileFn == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getByMobileFn(ctx, mobile)
}

func (s *stubDB) GetMemberByID(ctx context.Context, id int64) (*entity.Member, error) {
	if s.getByIDFn == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubDB) CreateMember(ctx context.Context, in entity.NewMember) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, in)
}

func (s *stubDB) UpdateMemberProfile(ctx context.Context, in entity.UpdateProfile) error {
	if s.updateProfileFn == nil {
		return nil
	}
	return s.updateProfileFn(ctx, in)
}

func (s *stubDB) UpdateMemberPhoto(ctx context.Context, id int64, photoURL string) error {
	if s.updatePhotoFn == nil {
		return nil
	}
	return s.updatePhotoFn(ctx, id, photoURL)
}

func (s *stubDB) UpdateMemberLastLogin(ctx context.Context, id int64, at time.Time) error {
	if s.updateLastLoginFn == nil {
		return nil
	}
	return s.updateLastLoginFn(ctx, id, at)
}

type stubCache struct {
	getFn    func(ctx context.Context, identifier string) (*entity.OtpChallenge, error)
	createFn func(ctx context.Context, ch entity.OtpChallenge, ttl time.Duration) (bool, error)
	deleteFn func(ctx context.Context, identifier string) error
}

func (s *stubCache) GetChallenge(ctx context.Context, identifier string) (*entity.OtpChallenge, error) {
	if s.getFn == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getFn(ctx, identifier)
}

func (s *stubCache) CreateChallenge(ctx context.Context, ch entity.OtpChallenge, ttl time.Duration) (bool, error) {
	if s.createFn == nil {
		return true, nil
	}
	return s.createFn(ctx, ch, ttl)
}

func (s *stubCache) DeleteChallenges(ctx context.Context, identifier string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, identifier)
}

type stubSMS struct {
	numbers []string
	bodies  []string
	err     error
}

func (s *stubSMS) Send(_ context.Context, mobile, body string) error {
	if s.err != nil {
		return s.err
	}
	s.numbers = append(s.numbers, mobile)
	s.bodies = append(s.bodies, body)
	return nil
}

type stubMessaging struct {
	events []MemberRegisteredEvent
	err    error
}

func (s *stubMessaging) PublishMemberRegistered(_ context.Context, msg MemberRegisteredEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, msg)
	return nil
}

func newTestUsecase(t *testing.T, db *stubDB, cache *stubCache, sms *stubSMS, msg *stubMessaging, now time.Time) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to init validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to init config: %v", err)
	}

	return New(Dependency{
		RepoDB:        db,
		RepoCache:     cache,
		RepoSMS:       sms,
		RepoMessaging: msg,
		Validator:     v10,
		Config:        cfg,
		UID:           &fakeNumberID{id: 100},
		UUID:          fakeStringID{},
		Clock:         &fakeClock{now: now},
		JWT:           fakeJWT{},
		Instrument:    instrument.NewNoop(),
	})
}
