package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

const (
	otpCodeMin  = 100000
	otpCodeSpan = 900000
)

type OtpRequestInput struct {
	Identifier string `validate:"required,mobile"`
}

type OtpRequestOutput struct {
	Status entity.OtpRequestStatus
}

func (s *Usecase) OtpRequest(ctx context.Context, in OtpRequestInput) (*OtpRequestOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpRequest")
	defer span.End()

	in.Identifier = normalizeIdentifier(in.Identifier)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cooldown := s.cfg.GetSecond("modules.identity.otp_cooldown_seconds")
	validity := s.cfg.GetMinute("modules.identity.otp_validity_minutes")

	ch, err := s.repoCache.GetChallenge(ctx, in.Identifier)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get otp challenge", "identifier", in.Identifier, "error", err)
		return nil, goerror.NewServer(err)
	}
	if err == nil {
		return s.redeliverChallenge(ctx, ch, cooldown)
	}

	code, err := s.generateOtpCode()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	ch = &entity.OtpChallenge{
		Identifier: in.Identifier,
		Code:       code,
		IssuedAt:   now,
		ExpiresAt:  now.Add(validity),
	}

	created, err := s.repoCache.CreateChallenge(ctx, *ch, validity)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create otp challenge", "identifier", in.Identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !created {
		// lost the race against a concurrent request; the stored challenge wins
		live, err := s.repoCache.GetChallenge(ctx, in.Identifier)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get otp challenge", "identifier", in.Identifier, "error", err)
			return nil, goerror.NewServer(err)
		}

		return s.redeliverChallenge(ctx, live, cooldown)
	}

	if err := s.deliverChallenge(ctx, ch, validity); err != nil {
		return nil, err
	}

	return &OtpRequestOutput{Status: entity.OtpRequestStatusIssued}, nil
}

func (s *Usecase) redeliverChallenge(
	ctx context.Context,
	ch *entity.OtpChallenge,
	cooldown time.Duration,
) (*OtpRequestOutput, error) {
	elapsed := s.clock.Now().Sub(ch.IssuedAt)
	if elapsed < cooldown {
		remaining := time.Duration(math.Ceil((cooldown-elapsed).Seconds())) * time.Second
		return nil, goerror.NewRateLimited("Please wait before requesting a new code", remaining)
	}

	validity := ch.ExpiresAt.Sub(ch.IssuedAt)
	if err := s.deliverChallenge(ctx, ch, validity); err != nil {
		return nil, err
	}

	return &OtpRequestOutput{Status: entity.OtpRequestStatusResent}, nil
}

func (s *Usecase) deliverChallenge(ctx context.Context, ch *entity.OtpChallenge, validity time.Duration) error {
	body := fmt.Sprintf(
		"Your verification code is %s. It is valid for %d minutes.",
		ch.Code,
		int(validity.Minutes()),
	)

	if err := s.repoSMS.Send(ctx, ch.Identifier, body); err != nil {
		slog.ErrorContext(ctx, "failed to deliver otp code", "identifier", ch.Identifier, "error", err)
		return goerror.NewDelivery(err, "Failed to deliver verification code")
	}

	return nil
}

func (s *Usecase) generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeSpan))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+otpCodeMin), nil
}

func normalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
