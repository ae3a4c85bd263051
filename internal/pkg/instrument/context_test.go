package instrument

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		// Arrange
		ctx := SetCorrelationID(context.Background(), "abc-123")

		// Act
		got := GetCorrelationID(ctx)

		// Assert
		if got != "abc-123" {
			t.Fatalf("expected abc-123, got %q", got)
		}
	})

	t.Run("Absent", func(t *testing.T) {
		if got := GetCorrelationID(context.Background()); got != "" {
			t.Fatalf("expected empty correlation id, got %q", got)
		}
	})
}
