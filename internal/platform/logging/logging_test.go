package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWritesAtLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(buf, "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Debug().Int("target", 42).Msg("target drawn")

	if !strings.Contains(buf.String(), `"target":42`) {
		t.Fatalf("expected structured field in output, got %q", buf.String())
	}
}

func TestNewDisabledProducesNoOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(buf, "disabled")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Info().Msg("should not appear")

	if buf.Len() != 0 {
		t.Fatalf("expected no output from disabled logger, got %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "shouting"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
