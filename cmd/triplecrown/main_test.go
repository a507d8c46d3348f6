package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// Smoke test to ensure main honors SKIP_TRIPLECROWN_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_TRIPLECROWN_RUN", "1")
	main()
}

func TestRunRendersFixtureSeasons(t *testing.T) {
	t.Setenv("SEASONS_SOURCE", "fixture")
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-format", "text", "timeline"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "🏆 Acme") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestRunRejectsBadUsage(t *testing.T) {
	cases := [][]string{
		{"serve"},
		{"-format", "xml"},
		{"table", "history"},
		{"-nope"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), args, &stdout, &stderr); code != exitUsage {
			t.Fatalf("args %v: expected usage exit, got %d", args, code)
		}
		if stdout.Len() != 0 {
			t.Fatalf("args %v: expected nothing on stdout, got %q", args, stdout.String())
		}
	}
}
