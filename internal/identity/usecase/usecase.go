package usecase

import (
	"context"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/clock"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goroutine"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
	"github.com/rkarmani/memberd/internal/pkg/storage"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type MemberRegisteredEvent struct {
	MemberID int64
	Mobile   string
	Email    string
	Name     string
}

type repoMessaging interface {
	PublishMemberRegistered(ctx context.Context, msg MemberRegisteredEvent) error
}

type repoDB interface {
	GetMemberByMobile(ctx context.Context, mobile string) (*entity.Member, error)
	GetMemberByID(ctx context.Context, id int64) (*entity.Member, error)

	CreateMember(ctx context.Context, in entity.NewMember) error

	UpdateMemberProfile(ctx context.Context, in entity.UpdateProfile) error
	UpdateMemberPhoto(ctx context.Context, id int64, photoURL string) error
	UpdateMemberLastLogin(ctx context.Context, id int64, at time.Time) error
}

type repoCache interface {
	GetChallenge(ctx context.Context, identifier string) (*entity.OtpChallenge, error)
	CreateChallenge(ctx context.Context, ch entity.OtpChallenge, ttl time.Duration) (bool, error)
	DeleteChallenges(ctx context.Context, identifier string) error
}

type repoSMS interface {
	Send(ctx context.Context, mobile, body string) error
}

type Usecase struct {
	repoDB        repoDB
	repoCache     repoCache
	repoSMS       repoSMS
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	storage       storage.Storage
	uid           uid.NumberID
	uuid          uid.StringID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoCache     repoCache
	RepoSMS       repoSMS
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Storage       storage.Storage
	UID           uid.NumberID
	UUID          uid.StringID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoCache:     dep.RepoCache,
		repoSMS:       dep.RepoSMS,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		storage:       dep.Storage,
		uid:           dep.UID,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
