package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrGatewayRejected indicates the gateway answered with a non-success status.
var ErrGatewayRejected = errors.New("sms: gateway rejected message")

// HTTPOptions configures the HTTP gateway driver.
type HTTPOptions struct {
	// Endpoint is the gateway URL messages are POSTed to.
	Endpoint string
	// APIKey is sent in the Authorization header.
	APIKey string
	// Route selects the gateway message route (e.g. "otp").
	Route string
	// Timeout bounds a single gateway call.
	Timeout time.Duration
	// MaxRetries bounds delivery attempts beyond the first.
	MaxRetries uint64
	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

type gatewayRequest struct {
	Route   string `json:"route"`
	Numbers string `json:"numbers"`
	Message string `json:"message"`
}

// HTTP sends messages through a fast2sms-style bulk gateway.
//
// Transient failures (network errors, 5xx) are retried with fibonacci
// backoff; 4xx responses fail immediately since retrying cannot help.
type HTTP struct {
	opts   HTTPOptions
	client *http.Client
}

func NewHTTP(opts HTTPOptions) (*HTTP, error) {
	if opts.Endpoint == "" {
		return nil, errors.New("sms: endpoint is required")
	}

	if opts.Route == "" {
		opts.Route = "otp"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 2
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	return &HTTP{opts: opts, client: client}, nil
}

func (h *HTTP) Send(ctx context.Context, mobile, body string) error {
	payload, err := json.Marshal(gatewayRequest{
		Route:   h.opts.Route,
		Numbers: mobile,
		Message: body,
	})
	if err != nil {
		return err
	}

	b := retry.WithMaxRetries(h.opts.MaxRetries, retry.NewFibonacci(200*time.Millisecond))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.opts.Endpoint, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", h.opts.APIKey)

		resp, err := h.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode))
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
		}

		return nil
	})
}
