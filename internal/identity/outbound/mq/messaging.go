package mq

import (
	"context"
	"encoding/json"

	"github.com/rkarmani/memberd/internal/identity/usecase"
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

func (m *Messaging) PublishMemberRegistered(ctx context.Context, msg usecase.MemberRegisteredEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishMemberRegistered")
	defer span.End()

	body, err := json.Marshal(event.MemberRegisteredMessage{
		MemberID: msg.MemberID,
		Mobile:   msg.Mobile,
		Email:    msg.Email,
		Name:     msg.Name,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.MemberRegisteredDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
