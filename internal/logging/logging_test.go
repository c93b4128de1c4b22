package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupWritesThroughSlog(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, false)

	slog.Info("layout selected", "linear", true)
	slog.Debug("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "layout selected")
	assert.Contains(t, out, "linear=true")
	assert.NotContains(t, out, "hidden at info level")
}

func TestSetupDebug(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, true)

	slog.Debug("visible at debug level")

	assert.Contains(t, buf.String(), "visible at debug level")
}
