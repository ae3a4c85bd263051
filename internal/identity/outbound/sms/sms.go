// Package sms delivers OTP codes over a bulk-SMS HTTP gateway.
//
// Delivery is synchronous: the caller needs to know whether the code went
// out, so failures are returned instead of being queued. A "log" driver
// prints the message for local development.
package sms

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDriver indicates an unsupported SMS driver.
var ErrUnknownDriver = errors.New("sms: unknown driver")

const (
	// DriverHTTP selects the HTTP gateway backend.
	DriverHTTP = "http"
	// DriverLog selects the development logger backend.
	DriverLog = "log"
)

// FactoryOptions groups configuration for SMS drivers.
type FactoryOptions struct {
	// HTTP configures the HTTP gateway backend.
	HTTP HTTPOptions
}

// NewFromDriver constructs a sender implementation by driver name.
func NewFromDriver(driver string, opts FactoryOptions) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverHTTP:
		return NewHTTP(opts.HTTP)
	case DriverLog:
		return NewLog(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
