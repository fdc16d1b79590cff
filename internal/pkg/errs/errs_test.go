package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestErrors_MessageAndSentinel(t *testing.T) {
	cause := errors.New("row locked")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "not found",
			err:      errs.NewObjectNotFoundError("order", "4f1c"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 4f1c",
		},
		{
			name:     "not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("variant", "v-1\nx", cause),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: variant, ID is: v-1 x (cause: row locked)",
		},
		{
			name:     "invalid",
			err:      errs.NewValueIsInvalidError("zip code"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: zip code",
		},
		{
			name:     "invalid with cause",
			err:      errs.NewValueIsInvalidErrorWithCause("rent status", cause),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: rent status (cause: row locked)",
		},
		{
			name:     "out of range",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 99",
		},
		{
			name:     "out of range with cause",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("stock", -2, 0, 1000, cause),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -2 is stock, min value is 0, max value is 1000 (cause: row locked)",
		},
		{
			name:     "required",
			err:      errs.NewValueIsRequiredError("email"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: email",
		},
		{
			name:     "required with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("rental period", cause),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: rental period (cause: row locked)",
		},
		{
			name:     "access denied",
			err:      errs.NewAccessDeniedError("agent 42", "delivery 7"),
			sentinel: errs.ErrAccessDenied,
			message:  "access denied: agent 42 may not act on delivery 7",
		},
		{
			name:     "conflict",
			err:      errs.NewConflictError("sale item", nil),
			sentinel: errs.ErrConflict,
			message:  "conflict: sale item",
		},
		{
			name:     "conflict with cause",
			err:      errs.NewConflictError("sale item", cause),
			sentinel: errs.ErrConflict,
			message:  "conflict: sale item (cause: row locked)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, fmt.Errorf("checkout: %w", tt.err), tt.sentinel)
		})
	}
}

func TestErrors_As(t *testing.T) {
	wrapped := fmt.Errorf("add to cart: %w", errs.NewValueIsOutOfRangeError("quantity", 5, 1, 3))

	var rangeErr *errs.ValueIsOutOfRangeError
	if assert.ErrorAs(t, wrapped, &rangeErr) {
		assert.Equal(t, "quantity", rangeErr.ParamName)
		assert.Equal(t, 3, rangeErr.Max)
	}

	var denied *errs.AccessDeniedError
	assert.False(t, errors.As(wrapped, &denied))
}

func TestErrors_SentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		errs.ErrObjectNotFound,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		errs.ErrAccessDenied,
		errs.ErrConflict,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
