package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxchart/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			gt.Equal(t, logging.ParseLogLevel(input), expected)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("console")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatConsole)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestNewLoggerWithFormat_AutoFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelInfo, &buf, logging.FormatAuto)
	logger.Debug("hidden")
	logger.Info("Report written", "path", "chart.html")

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.Equal(t, entry["msg"], any("Report written"))
	gt.Equal(t, entry["path"], any("chart.html"))
	gt.False(t, logging.IsTerminal(&buf))
}
