package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rossnomann/fretboard/internal/logging"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	logging.SetLogger(nil)
	if logging.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should not be enabled")
	}
}

func TestSetup(t *testing.T) {
	defer logging.SetLogger(nil)
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logging.Setup(&buf, false)
	logging.Logger().Debug("hidden")
	logging.Logger().Info("shown", "frets", 24)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record logged at info level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "frets=24") {
		t.Errorf("info record missing: %s", out)
	}

	buf.Reset()
	logging.Setup(&buf, true)
	logging.Logger().Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug record missing in debug mode: %s", buf.String())
	}
}
