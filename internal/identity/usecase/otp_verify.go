package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"github.com/rkarmani/memberd/internal/pkg/goerror"
)

type OtpVerifyInput struct {
	Identifier string `validate:"required,mobile"`
	Code       string `validate:"required,len=6,numeric"`
}

func (s *Usecase) OtpVerify(ctx context.Context, in OtpVerifyInput) error {
	ctx, span := s.startSpan(ctx, "OtpVerify")
	defer span.End()

	in.Identifier = normalizeIdentifier(in.Identifier)
	in.Code = strings.TrimSpace(in.Code)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	return s.consumeChallenge(ctx, in.Identifier, in.Code)
}

// consumeChallenge checks the code against the live challenge for the
// identifier and, on success, retires every challenge bound to it. A failed
// attempt leaves the challenge live. An expired challenge behaves exactly
// like a missing one.
func (s *Usecase) consumeChallenge(ctx context.Context, identifier, code string) error {
	ch, err := s.repoCache.GetChallenge(ctx, identifier)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "otp challenge not found", "identifier", identifier)
		return goerror.NewBusiness("Invalid or expired verification code", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp challenge", "identifier", identifier, "error", err)
		return goerror.NewServer(err)
	}

	if subtle.ConstantTimeCompare([]byte(ch.Code), []byte(code)) != 1 {
		slog.WarnContext(ctx, "otp code mismatch", "identifier", identifier)
		return goerror.NewBusiness("Invalid or expired verification code", goerror.CodeUnauthorized)
	}

	if err := s.repoCache.DeleteChallenges(ctx, identifier); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete otp challenges", "identifier", identifier, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
