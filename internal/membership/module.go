package membership

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rkarmani/memberd/internal/membership/inbound"
	"github.com/rkarmani/memberd/internal/membership/outbound/db"
	"github.com/rkarmani/memberd/internal/membership/outbound/mq"
	"github.com/rkarmani/memberd/internal/membership/usecase"
	"github.com/rkarmani/memberd/internal/pkg/authz"
	"github.com/rkarmani/memberd/internal/pkg/clock"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goroutine"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/messaging"
	"github.com/rkarmani/memberd/internal/pkg/router"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Authorizer authz.Authorizer           `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbMembership := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbMembership,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Authorizer:    dep.Authorizer,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
