package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return n
}

func TestCacheClearEmpty(t *testing.T) {
	isolate(t)
	if err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("clearing a missing cache: %v", err)
	}
}

func TestRenderFillsAndClearEmptiesCache(t *testing.T) {
	isolate(t)
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "jan.svg")

	if err := execute(t, "render", "1", "2024", out); err != nil {
		t.Fatal(err)
	}
	if countFiles(t, dir) != 1 {
		t.Fatalf("cache holds %d entries after one render, want 1", countFiles(t, dir))
	}

	if err := execute(t, "render", "1", "2024", out, "--no-cache", "--opaque"); err != nil {
		t.Fatal(err)
	}
	if countFiles(t, dir) != 1 {
		t.Error("--no-cache render should not write to the cache")
	}

	if err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if n := countFiles(t, dir); n != 0 {
		t.Errorf("cache holds %d entries after clear", n)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("clear should keep the cache directory")
	}
}

func TestCachePath(t *testing.T) {
	isolate(t)
	if err := execute(t, "cache", "path"); err != nil {
		t.Fatal(err)
	}
}
