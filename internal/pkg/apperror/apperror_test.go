package apperror

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "validation keeps reason", err: Validation("question is absent"), want: "question is absent"},
		{name: "storage is prefixed", err: Storage("constraint violated", errors.New("pq: boom")), want: "message could not be stored: constraint violated"},
		{name: "storage read is prefixed", err: StorageRead("store request cancelled", context.Canceled), want: "message could not be read: store request cancelled"},
		{name: "internal hides details", err: Internal(errors.New("nil pointer dereference")), want: "internal failure"},
		{name: "invalid argument keeps reason", err: InvalidArgument("request cannot be nil"), want: "request cannot be nil"},
		{name: "nil error", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Public())
		})
	}
}

func TestAsUnwrapsChain(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("insert ai message: %w", Storage("store unavailable", cause))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindStorage, appErr.Kind)
	assert.ErrorIs(t, wrapped, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindValidation, KindOf(Validation("content is absent")))
}
