package cache

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func waitResult(t *testing.T, ic *ImageCache) Result {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		var got *Result
		ic.Drain(func(r Result) { got = &r })
		if got != nil {
			return *got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no result before deadline")
	return Result{}
}

func TestImageCache_DownloadThenDisk(t *testing.T) {
	body := pngBytes(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	dir := t.TempDir()
	ic, err := NewImageCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	url := srv.URL + "/poster.png"

	if ic.Request(context.Background(), url) {
		t.Fatal("Request() reported a cold cache hit")
	}
	r := waitResult(t, ic)
	if r.Err != nil || r.URL != url {
		t.Fatalf("result %+v", r)
	}
	if b := r.Image.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("bounds %v, want 4x6", b)
	}
	if !ic.Request(context.Background(), url) || ic.Get(url) == nil {
		t.Error("image not kept in memory")
	}

	// A fresh cache over the same directory reads from disk.
	ic2, err := NewImageCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ic2.Request(context.Background(), url)
	if r := waitResult(t, ic2); r.Err != nil {
		t.Fatalf("disk load: %v", r.Err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestImageCache_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ic, err := NewImageCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	url := srv.URL + "/missing.png"
	ic.Request(context.Background(), url)

	r := waitResult(t, ic)
	if r.Err == nil {
		t.Fatal("expected an error for 404")
	}
	if ic.Get(url) != nil {
		t.Error("failed load cached in memory")
	}
}

func TestImageCache_DrainEmpty(t *testing.T) {
	ic, err := NewImageCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if n := ic.Drain(func(Result) { t.Error("unexpected result") }); n != 0 {
		t.Errorf("Drain() = %d, want 0", n)
	}
}
