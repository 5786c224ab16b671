// Package imagecache keeps downloaded eyedropper images on disk so repeated samples of the same
// URL do not fetch it again.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/huewheel/internal/util/http"
)

// Cache stores remote images under Dir, one file per URL.
type Cache struct {
	// Dir defaults to DefaultDir() when empty.
	Dir string
	// Refresh downloads the image even when a cached copy exists.
	Refresh bool
	// Fetch configures the download.
	Fetch httputil.FetchOptions
}

// DefaultDir returns the default cache directory, ~/.cache/huewheel/images on Linux.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "huewheel", "images"), nil
	}
	return filepath.Join(cacheDir, "huewheel", "images"), nil
}

// Filename returns the deterministic cache file name of rawURL: a hash of the URL plus the
// extension of its path, or .img when it has none.
func Filename(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return fmt.Sprintf("%x%s", hash[:16], ext)
}

// Get returns the local path of rawURL, downloading it first when it is not cached.
func (c *Cache) Get(ctx context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	dir := c.Dir
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cached := filepath.Join(dir, Filename(rawURL))
	if !c.Refresh {
		if _, err := os.Stat(cached); err == nil {
			return cached, nil
		}
	}

	data, err := httputil.Fetch(ctx, rawURL, c.Fetch)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}

	// A cached path always holds a complete download.
	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), cached); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	return cached, nil
}
