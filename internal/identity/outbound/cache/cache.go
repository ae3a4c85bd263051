// Package cache stores OTP challenges in Redis.
//
// One key per identifier. Creation uses SET NX so two concurrent first
// requests serialize on the store: exactly one caller gets created=true, the
// loser re-reads the stored challenge. Expiry is delegated to the key TTL, so
// an expired challenge is indistinguishable from a missing one.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rkarmani/memberd/internal/identity/entity"
	"github.com/rkarmani/memberd/internal/pkg/goerror"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const challengeKeyPrefix = "otp:challenge:"

type challengePayload struct {
	Code      string    `json:"code"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Cache struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewCache(client *redis.Client, ins instrument.Instrumentation) *Cache {
	return &Cache{client: client, ins: ins}
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("identity.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (c *Cache) GetChallenge(ctx context.Context, identifier string) (ch *entity.OtpChallenge, err error) {
	ctx, span := c.startSpan(ctx, "GetChallenge")
	defer func() { c.endSpan(span, err) }()

	raw, err := c.client.Get(ctx, challengeKeyPrefix+identifier).Bytes()
	if errors.Is(err, redis.Nil) {
		err = goerror.ErrNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var payload challengePayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	return &entity.OtpChallenge{
		Identifier: identifier,
		Code:       payload.Code,
		IssuedAt:   payload.IssuedAt,
		ExpiresAt:  payload.ExpiresAt,
	}, nil
}

func (c *Cache) CreateChallenge(
	ctx context.Context,
	ch entity.OtpChallenge,
	ttl time.Duration,
) (created bool, err error) {
	ctx, span := c.startSpan(ctx, "CreateChallenge")
	defer func() { c.endSpan(span, err) }()

	raw, err := json.Marshal(challengePayload{
		Code:      ch.Code,
		IssuedAt:  ch.IssuedAt,
		ExpiresAt: ch.ExpiresAt,
	})
	if err != nil {
		return false, err
	}

	created, err = c.client.SetNX(ctx, challengeKeyPrefix+ch.Identifier, raw, ttl).Result()
	return created, err
}

func (c *Cache) DeleteChallenges(ctx context.Context, identifier string) (err error) {
	ctx, span := c.startSpan(ctx, "DeleteChallenges")
	defer func() { c.endSpan(span, err) }()

	err = c.client.Del(ctx, challengeKeyPrefix+identifier).Err()
	return err
}
