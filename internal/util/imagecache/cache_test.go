package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		url     string
		wantExt string
	}{
		{url: "https://example.com/a/photo.PNG", wantExt: ".png"},
		{url: "https://example.com/photo.jpg?size=large", wantExt: ".jpg"},
		{url: "https://example.com/image", wantExt: ".img"},
		{url: "https://example.com/archive.tarball", wantExt: ".img"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got := Filename(tt.url)
			assert.True(t, strings.HasSuffix(got, tt.wantExt), got)
			assert.Len(t, strings.TrimSuffix(got, tt.wantExt), 32)
			assert.Equal(t, got, Filename(tt.url))
		})
	}
	assert.NotEqual(t, Filename("https://a.example/x.png"), Filename("https://b.example/x.png"))
}

func TestGetCachesDownloads(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("image bytes"))
	}))
	defer srv.Close()

	c := &Cache{Dir: filepath.Join(t.TempDir(), "images")}
	ctx := context.Background()

	path, err := c.Get(ctx, srv.URL+"/wall.png")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	again, err := c.Get(ctx, srv.URL+"/wall.png")
	require.NoError(t, err)
	assert.Equal(t, path, again)
	assert.Equal(t, int32(1), hits.Load())

	c.Refresh = true
	_, err = c.Get(ctx, srv.URL+"/wall.png")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())

	entries, err := os.ReadDir(c.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestGetErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := &Cache{Dir: t.TempDir()}
	_, err := c.Get(context.Background(), srv.URL+"/missing.png")
	assert.Error(t, err)

	_, err = c.Get(context.Background(), "ftp://example.com/a.png")
	assert.ErrorContains(t, err, "invalid URL")

	entries, err := os.ReadDir(c.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
