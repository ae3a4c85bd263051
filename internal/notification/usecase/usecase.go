package usecase

import (
	"context"
	"log/slog"

	"github.com/rkarmani/memberd/internal/pkg/config"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/mail"
	"github.com/rkarmani/memberd/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoMail  repoMail
	validator validator.Validator
	cfg       config.Config
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoMail   repoMail
	Validator  validator.Validator
	Config     config.Config
	Instrument instrument.Instrumentation
}

func NewNotification(dep Dependency) *Usecase {
	return &Usecase{
		repoMail:  dep.RepoMail,
		validator: dep.Validator,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

// sendEmail is best-effort: members without an e-mail address are skipped
// and delivery problems are logged, never propagated to the producer side.
func (s *Usecase) sendEmail(ctx context.Context, to, subject, textBody string) {
	if to == "" {
		slog.InfoContext(ctx, "skip email notification, member has no email address")
		return
	}

	msg := mail.Message{
		From:     s.cfg.GetString("modules.notification.email_from"),
		To:       []string{to},
		Subject:  subject,
		TextBody: textBody,
	}

	if err := s.repoMail.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send email notification", "to", to, "subject", subject, "error", err)
	}
}
