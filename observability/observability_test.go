package observability

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestFields(t *testing.T) {
	cases := []struct {
		field Field
		key   string
	}{
		{String("gesture", "pan"), "gesture"},
		{Int("page", 3), "page"},
		{Float64("scale", 1.25), "scale"},
		{Bool("fit", true), "fit"},
		{Error("err", nil), "err"},
	}
	for _, c := range cases {
		if c.field.Key() != c.key {
			t.Errorf("Expected key %q, got %q", c.key, c.field.Key())
		}
	}
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log := NewSlog(base).With(String("component", "viewport"))

	log.Debug("commit", Float64("scale", 0.5), Int("page", 2))

	out := buf.String()
	for _, want := range []string{"commit", "component=viewport", "scale=0.5", "page=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got %q", want, out)
		}
	}
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}
	log = log.With(String("k", "v"))
	log.Debug("ignored")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored", Error("err", nil))
}
