package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("processed %d targets\n", 3)

		if got := buf.String(); got != "processed 3 targets\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("suppressed in quiet mode", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("noise\n")
		l.Println("more noise")

		if buf.Len() != 0 {
			t.Errorf("output = %q, want none in quiet mode", buf.String())
		}
	})
}

func TestErrorf(t *testing.T) {
	t.Parallel()

	t.Run("written even when quiet", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Errorf("resolve %s: %v", "gw.yaml", "boom")

		got := buf.String()
		if !strings.HasPrefix(got, "Error: ") {
			t.Errorf("output = %q, want Error: prefix", got)
		}
		if !strings.Contains(got, "gw.yaml") {
			t.Errorf("output = %q, want target in message", got)
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("prints key-value pairs when verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("merging layers", "target", "gw.yaml", "layers", 3)

		got := buf.String()
		if !strings.Contains(got, "merging layers") || !strings.Contains(got, "layers=3") {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("silent without verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("hidden")

		if buf.Len() != 0 {
			t.Errorf("output = %q, want none", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		l := New(&buf, true, false)
		ctx := WithLogger(context.Background(), l)

		if got := FromContext(ctx); got != l {
			t.Error("FromContext() did not return the attached logger")
		}
	})

	t.Run("no-op logger when unattached", func(t *testing.T) {
		t.Parallel()

		l := FromContext(context.Background())
		l.Printf("goes nowhere")
		l.Errorf("also nowhere")
	})
}
