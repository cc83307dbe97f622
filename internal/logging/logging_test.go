package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    hclog.Level
		wantErr bool
	}{
		{name: "default", opts: Options{}, want: hclog.Info},
		{name: "verbose", opts: Options{Verbose: true}, want: hclog.Debug},
		{name: "quiet", opts: Options{Quiet: true}, want: hclog.Error},
		{name: "quiet wins", opts: Options{Quiet: true, Verbose: true}, want: hclog.Error},
		{name: "explicit", opts: Options{Level: "warn"}, want: hclog.Warn},
		{name: "verbose beats level", opts: Options{Level: "warn", Verbose: true}, want: hclog.Debug},
		{name: "invalid", opts: Options{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLevel(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveLevel error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ResolveLevel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(Options{Output: &out})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("wrote texture", "texture", "cs_hs")

	s := out.String()
	if strings.Contains(s, "hidden") {
		t.Error("debug line written at info level")
	}
	if !strings.Contains(s, "wrote texture") || !strings.Contains(s, "texture=cs_hs") {
		t.Errorf("unexpected log output: %q", s)
	}
	if !strings.Contains(s, "texgen") {
		t.Errorf("logger name missing from output: %q", s)
	}
}

func TestNewJSON(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(Options{Output: &out, JSON: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hello", "k", 1)
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "{") {
		t.Errorf("expected JSON output, got %q", out.String())
	}
}
