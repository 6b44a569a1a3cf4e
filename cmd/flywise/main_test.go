package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCompareSucceeds(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "flights.txt")
	content := "ICN NRT FW101 09:00 11:05 120 300 800\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	code := run([]string{"flywise", "compare", "-f", path, "--from", "ICN", "--to", "NRT", "--depart", "08:00"}, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
}

func TestRunReportsUsageErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stderr bytes.Buffer
	code := run([]string{"flywise", "compare"}, &stderr)
	if code != 2 {
		t.Fatalf("expected invalid usage code 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "required") {
		t.Fatalf("expected missing flag error, got: %q", stderr.String())
	}
}

func TestRunNoItineraryExitCode(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "flights.txt")
	if err := os.WriteFile(path, []byte("ICN NRT FW101 09:00 11:05 120 300 800\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	code := run([]string{"flywise", "search", "-f", path, "--from", "NRT", "--to", "ICN", "--depart", "08:00"}, &stderr)
	if code != 5 {
		t.Fatalf("expected no-itinerary code 5, got %d", code)
	}
}
