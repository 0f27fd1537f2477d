package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestID_And_RequestIDFromContext(t *testing.T) {
	ctx := context.Background()

	// Initially empty
	assert.Equal(t, "", RequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-12345")
	assert.Equal(t, "req-12345", RequestIDFromContext(ctx))
}

func TestFromContext_AttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf)

	ctx := WithRequestID(context.Background(), "req-67890")
	FromContext(ctx, base).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-67890", entry["request_id"])
}

func TestFromContext_WithoutRequestID(t *testing.T) {
	base := New()
	assert.Same(t, base, FromContext(context.Background(), base))
}
