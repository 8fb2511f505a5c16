package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Result is a finished load, handed back on the consumer's goroutine by
// Drain.
type Result struct {
	URL   string
	Image image.Image
	Err   error
}

// ImageCache provides disk + memory caching for card artwork. Downloads run
// in the background; finished loads queue up until the owner drains them,
// so image conversion and layout stay on one goroutine.
type ImageCache struct {
	cacheDir string
	client   *http.Client
	memory   sync.Map // url -> image.Image
	loading  sync.Map // url -> struct{} (in-flight dedup)
	sem      chan struct{}
	results  chan Result
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		client:   httpClient,
		sem:      make(chan struct{}, 6),
		results:  make(chan Result, 64),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(url string) image.Image {
	if v, ok := ic.memory.Load(url); ok {
		return v.(image.Image)
	}
	return nil
}

// Request starts loading url in the background unless it is cached or
// already in flight. It reports whether the image is already in memory.
func (ic *ImageCache) Request(ctx context.Context, url string) bool {
	if _, ok := ic.memory.Load(url); ok {
		return true
	}
	if _, inFlight := ic.loading.LoadOrStore(url, struct{}{}); inFlight {
		return false
	}

	go func() {
		defer ic.loading.Delete(url)

		select {
		case ic.sem <- struct{}{}:
		case <-ctx.Done():
			return
		}
		img, err := ic.loadImage(ctx, url)
		<-ic.sem

		if err == nil {
			ic.memory.Store(url, img)
		}
		select {
		case ic.results <- Result{URL: url, Image: img, Err: err}:
		case <-ctx.Done():
		}
	}()
	return false
}

// Drain hands every finished load to fn without blocking and returns how
// many there were.
func (ic *ImageCache) Drain(fn func(Result)) int {
	n := 0
	for {
		select {
		case r := <-ic.results:
			fn(r)
			n++
		default:
			return n
		}
	}
}

func (ic *ImageCache) loadImage(ctx context.Context, url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ic.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
