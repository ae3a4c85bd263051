package sms

import (
	"context"
	"log/slog"
)

// Log is a development driver that writes the message to the log instead of
// calling a gateway.
type Log struct{}

func NewLog() *Log {
	return &Log{}
}

func (*Log) Send(ctx context.Context, mobile, body string) error {
	slog.InfoContext(ctx, "sms message", "mobile", mobile, "body", body)
	return nil
}
