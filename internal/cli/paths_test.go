package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spred/plotplotplot/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	xdg := t.TempDir()

	tests := []struct {
		name string
		xdg  string
		want string
	}{
		{"xdg", xdg, filepath.Join(xdg, appName)},
		{"home", "", filepath.Join(home, ".cache", appName)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)
			got, err := cacheDir()
			if err != nil {
				t.Fatalf("cacheDir: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(cache.NullCache); !ok {
		t.Errorf("newCache(noCache) = %T, want NullCache", c)
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("newCache() = %T, want *FileCache", c)
	}
}
