package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "error", "json")

	logger.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}

	logger.Error().Msg("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected error output, got %q", buf.String())
	}
}

func TestNewDefaultsToInfoOnUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "not-a-level", "json")

	logger.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered, got %q", buf.String())
	}

	logger.Info().Msg("shown")
	if !strings.Contains(buf.String(), `"level":"info"`) {
		t.Fatalf("expected info JSON output, got %q", buf.String())
	}
}

func TestNewJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Info().Str("component", "server").Msg("started")

	out := buf.String()
	if !strings.Contains(out, `"component":"server"`) {
		t.Fatalf("expected component field, got %q", out)
	}
	if !strings.Contains(out, `"message":"started"`) {
		t.Fatalf("expected message field, got %q", out)
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "console")

	logger.Info().Msg("readable")

	out := buf.String()
	if !strings.Contains(out, "readable") {
		t.Fatalf("expected console output, got %q", out)
	}
	if strings.Contains(out, `"message"`) {
		t.Fatalf("expected non-JSON console output, got %q", out)
	}
}
