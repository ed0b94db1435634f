package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{name: "default config", config: nil},
		{name: "json format", config: &Config{Level: LevelInfo, Format: "json", Output: &bytes.Buffer{}}},
		{name: "text format", config: &Config{Level: LevelDebug, Format: "text", Output: &bytes.Buffer{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if logger := NewLogger(tt.config); logger == nil {
				t.Error("NewLogger() returned nil")
			}
		})
	}
}

func TestLoggerWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{
		Level:   LevelDebug,
		Format:  "text",
		Output:  &buf,
		Sync:    true,
		NoColor: true,
	})

	logger.WithOp("SmpWmb").Info("op message")
	output := buf.String()
	if !strings.Contains(output, "op=SmpWmb") {
		t.Errorf("Expected op=SmpWmb in output, got: %s", output)
	}

	buf.Reset()
	logger.WithOp("Mb").WithWorker(3).Info("worker message")
	output = buf.String()
	if !strings.Contains(output, "op=Mb") || !strings.Contains(output, "worker=3") {
		t.Errorf("Expected op=Mb and worker=3 in output, got: %s", output)
	}

	buf.Reset()
	logger.WithError(errors.New("boom")).Error("failed")
	output = buf.String()
	if !strings.Contains(output, "boom") {
		t.Errorf("Expected error text in output, got: %s", output)
	}
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelDebug, Format: "json", Output: &buf, Sync: true})

	logger.Info("measured", "iterations", 1000, "unit", "ns", "dangling")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if rec["message"] != "measured" {
		t.Errorf("message=%v", rec["message"])
	}
	if rec["iterations"] != float64(1000) || rec["unit"] != "ns" {
		t.Errorf("fields missing: %v", rec)
	}
	if _, ok := rec["dangling"]; ok {
		t.Errorf("odd trailing key must be ignored: %v", rec)
	}
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelWarn, Format: "json", Output: &buf, Sync: true})

	logger.Debug("debug")
	logger.Info("info")
	logger.Infof("info %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("messages below warn were written: %s", buf.String())
	}
	logger.Warn("warn")
	logger.Error("error", "n", 1)
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Fatalf("got %d lines, want 2: %s", got, buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Errorf("ParseLevel(%q)=(%v,%v), want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseLevel("verbose"); ok {
		t.Error("ParseLevel(verbose) succeeded")
	}
}

func TestDefaultLogger(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	var buf bytes.Buffer
	SetDefault(NewLogger(&Config{Level: LevelInfo, Format: "json", Output: &buf, Sync: true}))
	Info("global", "k", "v")
	if !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("global logger output: %s", buf.String())
	}
}

func TestAsyncWriterClose(t *testing.T) {
	var buf bytes.Buffer
	aw := newAsyncWriter(&buf, 4)
	if _, err := aw.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}
	if err := aw.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("buffered output %q", buf.String())
	}
	if _, err := aw.Write([]byte("late")); err == nil {
		t.Error("write after close succeeded")
	}
}

func TestNop(t *testing.T) {
	Nop().Info("discarded", "k", 1)
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Level: LevelInfo, Format: "json", Output: &buf, Sync: true})
	logger.Infof("%d ops on %d workers", 9, 2)
	if !strings.Contains(buf.String(), `"message":"9 ops on 2 workers"`) {
		t.Errorf("formatted output: %s", buf.String())
	}
}
