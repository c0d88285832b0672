package paths

import (
	"path/filepath"
	"testing"
)

func TestDefaultStateDir_EnvOverride(t *testing.T) {
	t.Setenv(StateDirEnv, "/tmp/focus-test-state")

	dir, err := DefaultStateDir()
	if err != nil {
		t.Fatalf("DefaultStateDir: %v", err)
	}
	if dir != "/tmp/focus-test-state" {
		t.Errorf("DefaultStateDir = %q, want env override", dir)
	}
}

func TestDefaultStateDir_Home(t *testing.T) {
	t.Setenv(StateDirEnv, "")
	t.Setenv("HOME", "/home/someone")

	dir, err := DefaultStateDir()
	if err != nil {
		t.Fatalf("DefaultStateDir: %v", err)
	}
	want := filepath.Join("/home/someone", ".local", "state", "focusstudio")
	if dir != want {
		t.Errorf("DefaultStateDir = %q, want %q", dir, want)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath: %v", err)
	}
	want := filepath.Join("/home/someone", ".config", "focusstudio", "config.toml")
	if path != want {
		t.Errorf("GlobalConfigPath = %q, want %q", path, want)
	}
}
