package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		name string
		kind ErrorKind
		want string
	}{
		{"transport", ErrorKindTransport, "TRANSPORT"},
		{"api", ErrorKindAPI, "API"},
		{"http", ErrorKindHTTP, "HTTP"},
		{"unknown", ErrorKind(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestBusError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *BusError
		want string
		kind ErrorKind
	}{
		{
			name: "transport",
			err:  NewTransportError(errors.New("dial tcp: connection refused")),
			want: "ERROR: <HTTP_T>: MSG Connection error",
			kind: ErrorKindTransport,
		},
		{
			name: "api",
			err:  NewAPIError(400, "-1121", "Invalid symbol."),
			want: "ERROR: <Binance API>: Code -1121 MSG Invalid symbol.",
			kind: ErrorKindAPI,
		},
		{
			name: "http",
			err:  NewHTTPError(500),
			want: "ERROR: <HTTPS_P>: Code 500",
			kind: ErrorKindHTTP,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.NotEmpty(t, tt.err.Trace)
		})
	}
}

func TestNewAPIError_Fields(t *testing.T) {
	err := NewAPIError(400, "-2011", "Unknown order sent.")

	assert.Equal(t, 400, err.StatusCode)
	assert.Equal(t, "-2011", err.Code)
	assert.True(t, IsAPIError(err))
	assert.False(t, IsHTTPError(err))
	assert.False(t, IsTransportError(err))
}

func TestNewTransportError_Unwrap(t *testing.T) {
	err := NewTransportError(fmt.Errorf("http request: %w", context.DeadlineExceeded))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsTransportError(err))
	assert.Zero(t, err.StatusCode)
}

func TestIsKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("get order: %w", NewHTTPError(503))

	assert.True(t, IsHTTPError(err))
	assert.False(t, IsAPIError(err))
	assert.False(t, IsHTTPError(errors.New("plain")))
}

func TestNewBusError_CapturesRaiseSite(t *testing.T) {
	err := NewBusError(ErrorKindHTTP, "boom")

	require.NotEmpty(t, err.Trace)
	last := err.Trace[len(err.Trace)-1]
	assert.Equal(t, "TestNewBusError_CapturesRaiseSite", last.Function)
	assert.True(t, strings.HasSuffix(last.File, "errors_test.go"))
	assert.Contains(t, last.Text, "NewBusError(ErrorKindHTTP")
	assert.Positive(t, last.Line)
}

func TestNewBusErrorWithTrace(t *testing.T) {
	trace := []TraceNode{{File: "main.go", Line: 10, Function: "main", Text: "run()"}}
	err := NewBusErrorWithTrace(ErrorKindHTTP, "boom", trace)

	assert.Equal(t, trace, err.Trace)
	assert.Equal(t, "boom", err.Error())
}

func TestNewBusErrorWithTrace_EmptyCaptures(t *testing.T) {
	err := NewBusErrorWithTrace(ErrorKindHTTP, "boom", nil)

	require.NotEmpty(t, err.Trace)
	assert.Equal(t, "TestNewBusErrorWithTrace_EmptyCaptures", err.Trace[len(err.Trace)-1].Function)
}

func TestBusError_FormatTrace(t *testing.T) {
	err := NewBusErrorWithTrace(ErrorKindAPI, "boom", []TraceNode{
		{File: "/src/main.go", Line: 3, Function: "main", Text: "run()"},
		{File: "/src/run.go", Line: 7, Function: "run"},
	})

	assert.Equal(t, "/src/main.go:3 in main\n    run()\n/src/run.go:7 in run\n", err.FormatTrace())
}
