//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"legal-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errBookMissing := errs.NewKind(errs.KindNotFound, "book not found")

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "sentinel", err: errBookMissing, want: errs.KindNotFound},
		{name: "wrapped sentinel", err: errs.Wrap(errBookMissing, "add to cart"), want: errs.KindNotFound},
		{name: "marked plain error", err: errs.Mark(errors.New("boom"), errs.ErrConflict), want: errs.KindConflict},
		{name: "unclassified", err: errors.New("disk on fire"), want: errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestSentinelIdentitySurvivesWrapping(t *testing.T) {
	errOutOfStock := errs.NewKind(errs.KindUnavailable, "book out of stock")
	wrapped := errs.Wrap(errs.Wrap(errOutOfStock, "inner"), "outer")

	assert.True(t, errs.Is(wrapped, errOutOfStock))
	assert.True(t, errors.Is(wrapped, errOutOfStock))
	assert.Equal(t, errs.KindUnavailable, errs.KindOf(wrapped))
}
