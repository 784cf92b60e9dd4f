package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invoiceagent/invoiceagent/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", internal.ErrBadRequest("bad request"), true},
		{"wrapped", fmt.Errorf("handler: %w", internal.ErrNotFound("missing")), true},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", internal.ErrInternal("x"))), true},
		{"joined", errors.Join(errors.New("a"), internal.ErrGatewayTimeout("slow")), true},
		{"unrelated", errors.New("something went wrong"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, internal.IsHTTPError(tt.err))
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("wrapped preserves fields", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("decode failed")
		httpErr := internal.ErrBadRequest("invalid JSON body",
			internal.WithError(cause),
			internal.WithErrorCode("INVALID_JSON"),
			internal.WithRequestID("req-1"),
		)

		got := internal.AsHTTPError(fmt.Errorf("bind: %w", httpErr))
		require.NotNil(t, got)
		require.Equal(t, http.StatusBadRequest, got.StatusCode())
		require.Equal(t, "Bad Request", got.StatusText())
		require.Equal(t, "invalid JSON body", got.Error())
		require.Equal(t, "INVALID_JSON", got.ErrorCode)
		require.Equal(t, "req-1", got.RequestID)
		require.ErrorIs(t, got, cause)
	})

	t.Run("unrelated returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("plain")))
	})
}

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	tests := map[int]*internal.HTTPError{
		http.StatusBadRequest:          internal.ErrBadRequest("m"),
		http.StatusNotFound:            internal.ErrNotFound("m"),
		http.StatusMethodNotAllowed:    internal.ErrMethodNotAllowed("m"),
		http.StatusUnprocessableEntity: internal.ErrUnprocessable("m"),
		http.StatusInternalServerError: internal.ErrInternal("m"),
		http.StatusServiceUnavailable:  internal.ErrServiceUnavailable("m"),
		http.StatusGatewayTimeout:      internal.ErrGatewayTimeout("m"),
	}
	for code, err := range tests {
		require.Equal(t, code, err.Code)
		require.Equal(t, "m", err.Message)
	}
}
