package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSubDir(t *testing.T) {
	tmp := t.TempDir()
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_DATA_HOME", tmp)
	} else {
		t.Setenv("HOME", tmp)
	}

	dir, err := SubDir("book")
	if err != nil {
		t.Fatalf("SubDir failed: %v", err)
	}
	if filepath.Base(dir) != "book" {
		t.Errorf("expected leaf directory %q, got %q", "book", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("SubDir did not create the directory: %v", err)
	}
}
