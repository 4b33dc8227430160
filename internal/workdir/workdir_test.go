package workdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	flagDir := t.TempDir()
	envDir := t.TempDir()

	got, err := Resolve(flagDir, envDir)
	if err != nil || got != flagDir {
		t.Errorf("Resolve(flag, env) = %q, %v; want %q", got, err, flagDir)
	}

	got, err = Resolve("", envDir)
	if err != nil || got != envDir {
		t.Errorf("Resolve(\"\", env) = %q, %v; want %q", got, err, envDir)
	}
}

func TestResolveDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want, err := DefaultHome()
	if err != nil {
		t.Fatalf("DefaultHome failed: %v", err)
	}
	got, err := Resolve("", "")
	if err != nil || got != want {
		t.Errorf("Resolve default = %q, %v; want %q", got, err, want)
	}
}

func TestFollowRedirect(t *testing.T) {
	dir := t.TempDir()
	shared := filepath.Join(t.TempDir(), "shared")

	if got := FollowRedirect(dir); got != dir {
		t.Errorf("FollowRedirect without file = %q, want %q", got, dir)
	}

	if err := os.WriteFile(filepath.Join(dir, rootFile), []byte(shared+"\n"), 0644); err != nil {
		t.Fatalf("write %s: %v", rootFile, err)
	}
	if got := FollowRedirect(dir); got != shared {
		t.Errorf("FollowRedirect = %q, want %q", got, shared)
	}
}

func TestFollowRedirectRelative(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, rootFile), []byte("../other"), 0644); err != nil {
		t.Fatalf("write %s: %v", rootFile, err)
	}

	want := filepath.Clean(filepath.Join(dir, "..", "other"))
	if got := FollowRedirect(dir); got != want {
		t.Errorf("FollowRedirect = %q, want %q", got, want)
	}
}

func TestFollowRedirectBlankFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, rootFile), []byte("  \n"), 0644); err != nil {
		t.Fatalf("write %s: %v", rootFile, err)
	}
	if got := FollowRedirect(dir); got != dir {
		t.Errorf("FollowRedirect blank = %q, want %q", got, dir)
	}
}
