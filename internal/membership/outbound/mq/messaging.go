package mq

import (
	"context"
	"encoding/json"

	"github.com/rkarmani/memberd/internal/membership/usecase"
	"github.com/rkarmani/memberd/internal/pkg/instrument"
	"github.com/rkarmani/memberd/internal/pkg/messaging"
	"github.com/rkarmani/memberd/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishMembershipTransitioned(ctx context.Context, msg usecase.MembershipTransitionedEvent) error {
	ctx, span := m.ins.Tracer("membership.outbound.mq").Start(ctx, "PublishMembershipTransitioned")
	defer span.End()

	body, err := json.Marshal(event.MembershipTransitionedMessage{
		MembershipID: msg.MembershipID,
		MemberID:     msg.MemberID,
		Email:        msg.Email,
		Name:         msg.Name,
		Action:       msg.Action.String(),
		OldStatus:    msg.OldStatus.String(),
		NewStatus:    msg.NewStatus.String(),
		ValidTill:    msg.ValidTill,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.MembershipTransitionedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
