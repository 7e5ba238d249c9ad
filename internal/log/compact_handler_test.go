package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestCompactHandler tests attribute truncation.
func TestCompactHandler(t *testing.T) {
	t.Parallel()

	t.Run("truncates oversized string values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, true)

		long := strings.Repeat("x", MaxValueLen*2)
		logger.Info("fetched", "body", long)

		out := buf.String()
		if !strings.Contains(out, truncationMarker) {
			t.Errorf("expected truncation marker in output: %s", out)
		}
		if strings.Contains(out, long) {
			t.Error("full value should not appear in output")
		}
	})

	t.Run("keeps short values intact", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, true)

		logger.Info("fetched", "url", "http://example.org")

		out := buf.String()
		if !strings.Contains(out, "http://example.org") {
			t.Errorf("expected url in output: %s", out)
		}
		if strings.Contains(out, truncationMarker) {
			t.Errorf("unexpected truncation marker: %s", out)
		}
	})

	t.Run("truncates values inside groups", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, true)

		long := strings.Repeat("y", MaxValueLen+1)
		logger.Info("fetched", slog.Group("response", slog.String("body", long)))

		if !strings.Contains(buf.String(), truncationMarker) {
			t.Errorf("expected truncation inside group: %s", buf.String())
		}
	})

	t.Run("respects verbose flag", func(t *testing.T) {
		t.Parallel()

		var quiet bytes.Buffer
		New(&quiet, false).Debug("hidden")
		if quiet.Len() != 0 {
			t.Errorf("debug output should be suppressed when not verbose: %s", quiet.String())
		}

		var verbose bytes.Buffer
		New(&verbose, true).Debug("visible")
		if verbose.Len() == 0 {
			t.Error("debug output should appear when verbose")
		}
	})
}
