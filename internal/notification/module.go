package notification

import (
	"context"

	"github.com/rkarmani/memberd/internal/notification/inbound"
	"github.com/rkarmani/memberd/internal/notification/outbound/email"
	"github.com/rkarmani/memberd/internal/notification/usecase"
	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/goroutine"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/mail"
	"github.com/rkarmani/memberd/internal/pkg/messaging"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/pkg/validator"
)

type Dependency struct {
	Ctx        context.Context
	Messaging  messaging.Messaging
	Config     config.Config
	Instrument instrument.Instrumentation
	UUID       uid.StringID
	Goroutine  *goroutine.Manager
	Validator  validator.Validator
	Mail       mail.Mail
}

func New(dep Dependency) error {
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.NewNotification(usecase.Dependency{
		RepoMail:   repoMail,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Instrument: dep.Instrument,
	})

	if dep.Ctx != nil {
		inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)
	}

	return nil
}
