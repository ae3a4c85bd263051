package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rkarmani/memberd/internal/identity/inbound"
	"github.com/rkarmani/memberd/internal/identity/outbound/cache"
	"github.com/rkarmani/memberd/internal/identity/outbound/db"
	"github.com/rkarmani/memberd/internal/identity/outbound/mq"
	"github.com/rkarmani/memberd/internal/identity/outbound/sms"
	"github.com/rkarmani/memberd/internal/identity/usecase"
	"github.com/rkarmani/memberd/internal/pkg/clock"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goroutine"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
	"github.com/rkarmani/memberd/internal/pkg/messaging"
	"github.com/rkarmani/memberd/internal/pkg/router"
	"github.com/rkarmani/memberd/internal/pkg/storage"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	SMS        sms.Sender                 `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbMember := db.NewDB(dep.DBConn, dep.Instrument)
	cacheOtp := cache.NewCache(dep.CacheConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbMember,
		RepoCache:     cacheOtp,
		RepoSMS:       dep.SMS,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Storage:       dep.Storage,
		UID:           dep.UID,
		UUID:          dep.UUID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
