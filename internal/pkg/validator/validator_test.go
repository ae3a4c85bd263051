package validator

import (
	"errors"
	"testing"
)

var _ Validator = (*V10Validator)(nil)

func TestV10ValidatorValidate(t *testing.T) {
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	type payload struct {
		Mobile string `validate:"required,mobile"`
		Name   string `validate:"omitempty,alphaspace"`
	}

	t.Run("Valid", func(t *testing.T) {
		if err := v.Validate(payload{Mobile: "9876543210", Name: "Jane Doe"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("InvalidMobile", func(t *testing.T) {
		// Act
		err := v.Validate(payload{Mobile: "0123"})

		// Assert
		var verr V10ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if _, ok := verr.Values()["mobile"]; !ok {
			t.Fatalf("expected mobile field error, got %v", verr.Values())
		}
	})
}
