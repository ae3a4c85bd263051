package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/rkarmani/memberd/internal/notification/usecase"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/messaging"
	"github.com/rkarmani/memberd/internal/pkg/uid"
	"github.com/rkarmani/memberd/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, headers []messaging.Header) context.Context {
	for i := range headers {
		if headers[i].Key == keyOfCorrelationID {
			return instrument.SetCorrelationID(ctx, string(headers[i].Value))
		}
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) MemberRegisteredNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "MemberRegisteredNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: member registered notification", "msg_body", string(body))

	var payload event.MemberRegisteredMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of member registered notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeMemberRegistered(ctx, usecase.ConsumeMemberRegisteredInput{
		MemberID: payload.MemberID,
		Mobile:   payload.Mobile,
		Email:    payload.Email,
		Name:     payload.Name,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume member registered", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) MembershipTransitionedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Headers())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "MembershipTransitionedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: membership transitioned notification", "msg_body", string(body))

	var payload event.MembershipTransitionedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of membership transitioned notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeMembershipTransitioned(ctx, usecase.ConsumeMembershipTransitionedInput{
		MembershipID: payload.MembershipID,
		MemberID:     payload.MemberID,
		Email:        payload.Email,
		Name:         payload.Name,
		Action:       payload.Action,
		NewStatus:    payload.NewStatus,
		ValidTill:    payload.ValidTill,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume membership transitioned", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
