package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rkarmani/memberd/internal/identity/outbound/sms"
	"github.com/rkarmani/memberd/internal/pkg/authz"
	"github.com/rkarmani/memberd/internal/pkg/clock"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goroutine"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/jwt"
	"github.com/rkarmani/memberd/internal/pkg/mail"
	"github.com/rkarmani/memberd/internal/pkg/messaging"
	"github.com/rkarmani/memberd/internal/pkg/router"
	"github.com/rkarmani/memberd/internal/pkg/storage"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn     *pgxpool.Pool
	cacheConn  *redis.Client
	mail       mail.Mail
	messaging  messaging.Messaging
	storage    storage.Storage
	sms        sms.Sender
	authorizer authz.Authorizer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initSMS()
	app.initAuthorizer()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
