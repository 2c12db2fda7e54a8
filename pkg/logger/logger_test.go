package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext_FallsBackToGlobal(t *testing.T) {
	assert.Same(t, Get(), WithContext(context.Background()))

	l := zerolog.Nop()
	ctx := NewContext(context.Background(), &l)
	assert.Same(t, &l, WithContext(ctx))
}

func TestDBQuery(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug")
	t.Cleanup(func() { InitWithWriter(&bytes.Buffer{}, "info") })

	reqLogger := WithRequestID("abc123")
	ctx := NewContext(context.Background(), &reqLogger)

	DBQuery(ctx, "SELECT 1", time.Millisecond, nil)
	assert.Contains(t, buf.String(), `"request_id":"abc123"`)
	assert.Contains(t, buf.String(), `"message":"DB Query"`)

	buf.Reset()
	DBQuery(ctx, "SELECT 1", time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}
