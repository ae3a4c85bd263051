package sms

import "context"

// Sender sends a text message to a single mobile number.
type Sender interface {
	Send(ctx context.Context, mobile, body string) error
}
