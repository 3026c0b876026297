package fetcher

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/singleflight"

	"github.com/tunewave/tunewave-go/internal/port"
)

// Fetcher resolves media URLs to readable streams. Cache hits are served
// straight from disk; misses stream from the network while the bytes are
// teed into a staged cache entry, so playback never waits for the download
// to finish.
type Fetcher struct {
	cache port.BlobCache
	blobs port.BlobFetcher
	group singleflight.Group
}

// compile-time check: *Fetcher must satisfy port.MediaOpener
var _ port.MediaOpener = (*Fetcher)(nil)

func New(cache port.BlobCache, blobs port.BlobFetcher) *Fetcher {
	return &Fetcher{cache: cache, blobs: blobs}
}

func (f *Fetcher) Open(ctx context.Context, cat port.Category, url string) (io.ReadCloser, error) {
	if path, ok := f.cache.Get(cat, url); ok {
		log.Printf("serving %q from the %s cache...", url, cat)
		return os.Open(path)
	}

	rc, _, err := f.blobs.FetchBlob(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", url, err)
	}

	w, err := f.cache.Writer(cat, url)
	if err != nil {
		// a cache failure must not block playback
		log.Printf("could not stage cache entry for %q: %v", url, err)
		return rc, nil
	}
	return &teeCloser{src: rc, dst: w}, nil
}

// EnsureCached downloads the full blob into the cache. Concurrent calls for
// the same (category, URL) pair collapse into a single download.
func (f *Fetcher) EnsureCached(ctx context.Context, cat port.Category, url string) error {
	_, err, _ := f.group.Do(string(cat)+"|"+url, func() (any, error) {
		if f.cache.Has(cat, url) {
			return nil, nil
		}
		rc, _, err := f.blobs.FetchBlob(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetching %q: %w", url, err)
		}
		defer rc.Close()

		w, err := f.cache.Writer(cat, url)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(w, rc); err != nil {
			if a, ok := w.(aborter); ok {
				a.Abort()
			}
			return nil, fmt.Errorf("downloading %q: %w", url, err)
		}
		return nil, w.Close()
	})
	return err
}

type aborter interface{ Abort() error }

// teeCloser copies every byte read by the consumer into a staged cache
// writer. The entry commits only when the source was drained to EOF; a
// stream abandoned mid-way is discarded, never cached truncated.
type teeCloser struct {
	src       io.ReadCloser
	dst       io.WriteCloser
	committed bool
	failed    bool
}

func (t *teeCloser) Read(p []byte) (int, error) {
	n, err := t.src.Read(p)
	if n > 0 && !t.failed {
		if _, werr := t.dst.Write(p[:n]); werr != nil {
			// stop teeing but keep the playback stream alive
			log.Printf("cache tee failed: %v", werr)
			t.failed = true
		}
	}
	if err == io.EOF && !t.failed && !t.committed {
		t.committed = true
		if cerr := t.dst.Close(); cerr != nil {
			log.Printf("cache commit failed: %v", cerr)
		}
	}
	return n, err
}

func (t *teeCloser) Close() error {
	if !t.committed {
		if a, ok := t.dst.(aborter); ok {
			a.Abort()
		}
	}
	return t.src.Close()
}
