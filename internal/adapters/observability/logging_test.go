package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_JSONWithServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "api")

	l.Info().Msg("up")
	out := buf.String()
	if !strings.Contains(out, `"service":"api"`) {
		t.Fatalf("missing service field: %s", out)
	}
	if !strings.Contains(out, `"message":"up"`) {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected JSON output: %s", out)
	}
}

func TestNewLogger_ProdSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "planner")

	l.Debug().Msg("noise")
	if buf.Len() != 0 {
		t.Fatalf("debug line leaked in prod: %s", buf.String())
	}
}

func TestNewLogger_DevUsesConsoleWriterAtDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "dev", "api")

	l.Debug().Msg("verbose")
	out := buf.String()
	if out == "" {
		t.Fatalf("debug suppressed in dev")
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected console format in dev, got JSON: %s", out)
	}
}
