package inbound

import (
	"context"

	"github.com/rkarmani/memberd/internal/notification/usecase"
)

type uc interface {
	ConsumeMemberRegistered(ctx context.Context, in usecase.ConsumeMemberRegisteredInput) error
	ConsumeMembershipTransitioned(ctx context.Context, in usecase.ConsumeMembershipTransitionedInput) error
}
