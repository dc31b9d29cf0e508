package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/jmgilman/go/httperrors/errors"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Level string                 `json:"level"`
	Msg   string                 `json:"msg"`
	Meta  map[string]interface{} `json:"meta"`
}

func newJSONLogger(t *testing.T, level slog.Level) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewSlog(slog.New(NewHandler(FormatJSON, level, &buf))), &buf
}

func decode(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var out []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newJSONLogger(t, slog.LevelDebug)

	l.Debug("d", map[string]interface{}{"k": 1})
	l.Info("i", nil)
	l.Warn("w", nil)
	l.Error("e", map[string]interface{}{"code": "E_NF"})

	entries := decode(t, buf)
	require.Len(t, entries, 4)
	require.Equal(t, "DEBUG", entries[0].Level)
	require.Equal(t, float64(1), entries[0].Meta["k"])
	require.Equal(t, "INFO", entries[1].Level)
	require.Nil(t, entries[1].Meta)
	require.Equal(t, "WARN", entries[2].Level)
	require.Equal(t, "ERROR", entries[3].Level)
	require.Equal(t, "E_NF", entries[3].Meta["code"])
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	l, buf := newJSONLogger(t, slog.LevelWarn)

	l.Debug("d", nil)
	l.Info("i", nil)
	l.Warn("w", nil)

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "w", entries[0].Msg)
}

func TestLog_RoutesBySeverity(t *testing.T) {
	tests := []struct {
		severity errors.Severity
		want     string
	}{
		{errors.SeverityDebug, "DEBUG"},
		{errors.SeverityInfo, "INFO"},
		{errors.SeverityWarn, "WARN"},
		{errors.SeverityError, "ERROR"},
		{errors.Severity("fatal"), "ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			l, buf := newJSONLogger(t, slog.LevelDebug)
			Log(l, tt.severity, "msg", nil)

			entries := decode(t, buf)
			require.Len(t, entries, 1)
			require.Equal(t, tt.want, entries[0].Level)
		})
	}
}

func TestLog_NilLogger(t *testing.T) {
	require.NotPanics(t, func() {
		Log(nil, errors.SeverityError, "msg", nil)
	})
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		l := Nop()
		l.Debug("x", nil)
		l.Info("x", nil)
		l.Warn("x", nil)
		l.Error("x", nil)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(Format("xml"), slog.LevelInfo, &buf))
	l.Info("hello", "k", "v")

	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "k=v")
}
