package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDecodeDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("empty document should equal defaults: %+v", cfg)
	}
	if cfg.Entry != "main" || cfg.UI != UIPlain || cfg.Level() != zerolog.WarnLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brewin.yml")
	body := "entry: start\nlog_level: debug\nui: tui\ninputs: [\"12\", \"x\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Entry != "start" || cfg.UI != UITUI || cfg.Level() != zerolog.DebugLevel {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Inputs, []string{"12", "x"}) {
		t.Fatalf("unexpected inputs: %q", cfg.Inputs)
	}
	cfg.Trace = true
	if cfg.Level() != zerolog.TraceLevel {
		t.Fatalf("trace should override log_level")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode(strings.NewReader("entry: main\ncolour: red\n")); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestValidateAggregatesIssues(t *testing.T) {
	_, err := Decode(strings.NewReader("entry: two words\nlog_level: loud\nui: web\n"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %q", verr.Issues)
	}
	if !strings.HasPrefix(verr.Error(), "config validation failed:") {
		t.Fatalf("unexpected message: %v", verr)
	}
}
