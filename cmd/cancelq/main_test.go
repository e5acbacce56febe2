package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDrainDefault(t *testing.T) {
	out, _, err := run(t, "drain")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if want := "zero\none\ntwo\nthree\n"; out != want {
		t.Fatalf("output %q want %q", out, want)
	}
}

func TestDrainArgsAndSkip(t *testing.T) {
	out, _, err := run(t, "drain", "a", "b", "a", "c", "--skip", "a", "-s", "c")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if want := "b\n"; out != want {
		t.Fatalf("output %q want %q", out, want)
	}
}

func TestDrainArgsWithoutSkip(t *testing.T) {
	out, _, err := run(t, "drain", "x", "test-skip")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if want := "x\ntest-skip\n"; out != want {
		t.Fatalf("output %q want %q", out, want)
	}
}

func TestDrainConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drain.yml")
	yml := "values: [first, cancel-me, second]\nskip: [cancel-me]\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	out, stderr, err := run(t, "drain", "--config", path, "-v")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if want := "first\nsecond\n"; out != want {
		t.Fatalf("output %q want %q", out, want)
	}
	if !strings.Contains(stderr, "Marked 1 entries removed") {
		t.Fatalf("verbose log missing, stderr %q", stderr)
	}
}

func TestDrainConfigErrors(t *testing.T) {
	if _, _, err := run(t, "drain", "--config", filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing config")
	}
	if _, err := readDrainInput([]byte("values: [a]\nunknown: 1\n")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "cancelq v0.1.0") {
		t.Fatalf("output %q", out)
	}
}
