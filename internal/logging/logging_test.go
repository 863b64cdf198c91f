// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"chatty":  zapcore.InfoLevel,
		"INFO\n":  zapcore.InfoLevel,
		"fatal  ": zapcore.FatalLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in).Level(), "level %q", in)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWriterLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("info", zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Info("hello", zap.String("preset", "luxury-gold"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "INFO", entry["severity"])
	assert.Equal(t, "luxury-gold", entry["preset"])
	assert.Contains(t, entry, "timestamp")
}

func TestContextLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.NotNil(t, FromContext(WithLogger(context.Background(), nil)))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, InjectLogger(zap.New(core)), RequestLogger)
	r.Get("/v1/presets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		FromContext(req.Context()).Debug("inside handler")
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/presets/nope", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 2)

	first := completed[0]
	assert.Equal(t, zapcore.WarnLevel, first.Level)
	fields := first.ContextMap()
	assert.Equal(t, "/v1/presets/{id}", fields["route"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, int64(len("missing")), fields["bytes"])
	assert.Equal(t, http.MethodGet, fields["method"])
	assert.NotEmpty(t, fields["request_id"])

	assert.Equal(t, zapcore.InfoLevel, completed[1].Level)

	inner := logs.FilterMessage("inside handler").All()
	require.Len(t, inner, 1)
	assert.Contains(t, inner[0].ContextMap(), "request_id")
}
