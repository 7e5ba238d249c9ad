package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewRootCmd tests the command tree.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	if cmd.Use != "orgscan" {
		t.Errorf("unexpected use: %q", cmd.Use)
	}

	want := map[string]bool{"scan": false, "run": false, "init": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing persistent verbose flag")
	}
}

// TestVersionCmd tests version output.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"orgscan version", "commit:", "built:"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
}

// TestInitCmd tests configuration file generation.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".orgscan")

		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"init", "-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("init failed: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("config file not created: %v", err)
		}
		if !strings.Contains(string(content), "listing:") || !strings.Contains(string(content), "crawl:") {
			t.Errorf("template sections missing:\n%s", content)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".orgscan")
		if err := os.WriteFile(path, []byte("keep me"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"init", "-o", path})

		if err := cmd.Execute(); err == nil {
			t.Fatal("expected error for existing file")
		}

		content, _ := os.ReadFile(path)
		if string(content) != "keep me" {
			t.Errorf("existing file should be untouched, got %q", content)
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".orgscan")
		if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"init", "-o", path, "-f"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("init -f failed: %v", err)
		}

		content, _ := os.ReadFile(path)
		if string(content) == "old" {
			t.Error("file should be overwritten with force")
		}
	})
}

// TestScanCmdArgs tests argument validation.
func TestScanCmdArgs(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"scan"})

	if err := cmd.Execute(); err == nil {
		t.Error("scan without arguments should fail")
	}
}
