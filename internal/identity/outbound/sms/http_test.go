package sms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		var got gatewayRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "key" {
				t.Errorf("expected api key header, got %q", r.Header.Get("Authorization"))
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender, err := NewHTTP(HTTPOptions{Endpoint: srv.URL, APIKey: "key"})
		if err != nil {
			t.Fatalf("failed to build sender: %v", err)
		}

		// Act
		err = sender.Send(context.Background(), "9876543210", "Your verification code is 123456.")

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Numbers != "9876543210" || got.Route != "otp" {
			t.Fatalf("unexpected gateway request: %+v", got)
		}
	})

	t.Run("ClientErrorFailsFast", func(t *testing.T) {
		// Arrange
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		sender, err := NewHTTP(HTTPOptions{Endpoint: srv.URL, MaxRetries: 3})
		if err != nil {
			t.Fatalf("failed to build sender: %v", err)
		}

		// Act
		err = sender.Send(context.Background(), "9876543210", "body")

		// Assert
		if !errors.Is(err, ErrGatewayRejected) {
			t.Fatalf("expected gateway rejection, got %v", err)
		}
		if attempts != 1 {
			t.Fatalf("expected no retry on 4xx, got %d attempts", attempts)
		}
	})

	t.Run("ServerErrorRetried", func(t *testing.T) {
		// Arrange
		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender, err := NewHTTP(HTTPOptions{Endpoint: srv.URL, MaxRetries: 3})
		if err != nil {
			t.Fatalf("failed to build sender: %v", err)
		}

		// Act
		err = sender.Send(context.Background(), "9876543210", "body")

		// Assert
		if err != nil {
			t.Fatalf("expected success after retries, got %v", err)
		}
		if attempts != 3 {
			t.Fatalf("expected 3 attempts, got %d", attempts)
		}
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		if _, err := NewHTTP(HTTPOptions{}); err == nil {
			t.Fatalf("expected error without endpoint")
		}
	})
}
