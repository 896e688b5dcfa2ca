package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sartorproj/pageviews/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := logging.ParseLogLevel(tc.input)
			gt.NoError(t, err)
			gt.Equal(t, level, tc.want)
		})
	}

	_, err := logging.ParseLogLevel("verbose")
	gt.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLoggerAutoUsesJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf, logging.FormatAuto)
	logger.Debug("hidden")
	logger.Info("chart written", slog.String("chart", "line"))

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
	gt.Equal(t, entry["msg"], any("chart written"))
	gt.Equal(t, entry["chart"], any("line"))
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelDebug, &buf, logging.FormatConsole)
	logger.Info("loaded dataset")
	gt.S(t, buf.String()).Contains("loaded dataset")
}
