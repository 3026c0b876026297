package mock

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/tunewave/tunewave-go/internal/port"
)

// BlobCache is an in-memory cache double keyed like the disk store.
type BlobCache struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// errors
	PutErr    error
	WriterErr error
	ClearErr  error

	// call flags
	PutCalled   bool
	ClearAllCalled bool
	Limit       int64
	Recomputes  int
}

func NewBlobCache() *BlobCache {
	return &BlobCache{blobs: make(map[string][]byte)}
}

func (c *BlobCache) key(cat port.Category, url string) string {
	return string(cat) + "|" + url
}

// Seed installs a blob without going through Put.
func (c *BlobCache) Seed(cat port.Category, url string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blobs[c.key(cat, url)] = data
}

// Blob returns the stored bytes, for assertions.
func (c *BlobCache) Blob(cat port.Category, url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.blobs[c.key(cat, url)]
	return b, ok
}

func (c *BlobCache) Put(ctx context.Context, cat port.Category, url string, data []byte) error {
	c.PutCalled = true
	if c.PutErr != nil {
		return c.PutErr
	}
	c.Seed(cat, url, data)
	return nil
}

func (c *BlobCache) Get(cat port.Category, url string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.blobs[c.key(cat, url)]; ok {
		return "mem://" + c.key(cat, url), true
	}
	return "", false
}

func (c *BlobCache) Has(cat port.Category, url string) bool {
	_, ok := c.Get(cat, url)
	return ok
}

func (c *BlobCache) Writer(cat port.Category, url string) (io.WriteCloser, error) {
	if c.WriterErr != nil {
		return nil, c.WriterErr
	}
	return &memWriter{cache: c, cat: cat, url: url}, nil
}

type memWriter struct {
	cache *BlobCache
	cat   port.Category
	url   string
	buf   bytes.Buffer
	done  bool
}

func (w *memWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	w.cache.Seed(w.cat, w.url, w.buf.Bytes())
	return nil
}

func (w *memWriter) Abort() error {
	w.done = true
	return nil
}

func (c *BlobCache) DeleteOne(ctx context.Context, cat port.Category, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.blobs, c.key(cat, url))
	return nil
}

func (c *BlobCache) ClearCategory(ctx context.Context, cat port.Category) error {
	if c.ClearErr != nil {
		return c.ClearErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.blobs {
		if len(k) > len(cat) && k[:len(cat)] == string(cat) {
			delete(c.blobs, k)
		}
	}
	return nil
}

func (c *BlobCache) ClearAll(ctx context.Context) error {
	c.ClearAllCalled = true
	if c.ClearErr != nil {
		return c.ClearErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blobs = make(map[string][]byte)
	return nil
}

func (c *BlobCache) Snapshot() port.SizeSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	var snap port.SizeSnapshot
	for k, b := range c.blobs {
		n := int64(len(b))
		snap.TotalBytes += n
		switch {
		case len(k) >= len(port.CategoryImage) && k[:len(port.CategoryImage)] == string(port.CategoryImage):
			snap.ImageBytes += n
		case len(k) >= len(port.CategoryAudio) && k[:len(port.CategoryAudio)] == string(port.CategoryAudio):
			snap.AudioBytes += n
		default:
			snap.VideoBytes += n
		}
	}
	return snap
}

func (c *BlobCache) Recompute() error {
	c.Recomputes++
	return nil
}

func (c *BlobCache) SetLimit(maxBytes int64) {
	c.Limit = maxBytes
}
