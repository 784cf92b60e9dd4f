package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	t.Parallel()

	var info, errOnly bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With(slog.String("component", "test"))

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Info("first")
	log.Error("second")

	assert.Contains(t, info.String(), "first")
	assert.Contains(t, info.String(), "second")
	assert.NotContains(t, errOnly.String(), "first")
	assert.Contains(t, errOnly.String(), "second")
	assert.Contains(t, errOnly.String(), "component=test")
}
