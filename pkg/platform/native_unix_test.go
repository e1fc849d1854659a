//go:build !windows

package platform

import (
	"path/filepath"
	"testing"
)

func TestConfigHomeXDGOverride(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	t.Setenv("XDG_CONFIG_HOME", "/home/.shared_configs")

	dir, ok := Native{}.ConfigHome()
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if dir.Path != "/home/.shared_configs" {
		t.Fatalf("path mismatch: got=%q", dir.Path)
	}
	if !dir.Trusted {
		t.Fatal("override must be trusted as-is")
	}
}

func TestConfigHomeRelativeXDGIgnored(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")
	t.Setenv("XDG_CONFIG_HOME", "relative/configs")

	dir, ok := Native{}.ConfigHome()
	if !ok {
		t.Fatal("expected home fallback to succeed")
	}
	if dir.Path != "/home/testuser" {
		t.Fatalf("expected home fallback, got=%q", dir.Path)
	}
	if dir.Trusted {
		t.Fatal("home fallback must not be trusted")
	}
}

func TestConfigHomeNothingResolvable(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "not-absolute")

	if dir, ok := (Native{}).ConfigHome(); ok {
		t.Fatalf("expected failure, got=%q", dir.Path)
	}
}

func TestConfigHomeFallbackIsAbsolute(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/testuser")

	dir, ok := Native{}.ConfigHome()
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if !filepath.IsAbs(dir.Path) {
		t.Fatalf("path not absolute: got=%q", dir.Path)
	}
}
