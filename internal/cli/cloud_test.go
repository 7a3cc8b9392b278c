package cli

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/matzehuels/lexicloud/pkg/fonts"
)

// TestTranscriptServiceCachesEmojiAssets renders a transcript with a
// custom-emoji reference and checks that the fetched asset lands in the
// directory the cache command manages.
func TestTranscriptServiceCachesEmojiAssets(t *testing.T) {
	if _, err := fonts.Default(); err != nil {
		t.Skipf("no system font: %v", err)
	}
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding asset: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	c := New(io.Discard, LogInfo)
	svc, err := c.newTranscriptService(0, 0, "", srv.URL+"/emojis/%s.png")
	if err != nil {
		t.Fatalf("newTranscriptService: %v", err)
	}

	ctx := context.Background()
	if _, err := svc.RegisterPlace(ctx, transcriptPlace); err != nil {
		t.Fatalf("RegisterPlace: %v", err)
	}
	if err := svc.IngestMessage(ctx, transcriptPlace, "ada", "ship it <:rocket:301>"); err != nil {
		t.Fatalf("IngestMessage: %v", err)
	}
	data, err := svc.CloudPNG(ctx, "ada", "")
	if err != nil {
		t.Fatalf("CloudPNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("CloudPNG should return PNG bytes")
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	cached := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			cached++
		}
		return nil
	})
	if cached == 0 {
		t.Errorf("no cached assets under %s", dir)
	}
}
