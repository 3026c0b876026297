package cache

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/tunewave/tunewave-go/internal/port"
)

const stagingSuffix = ".part"

const lockStripes = 32

// Store is the process-wide disk blob cache: one subdirectory per category,
// one file per (category, source URL) pair. Sizes are recomputed by a full
// directory walk, never tracked incrementally.
type Store struct {
	root string
	dirs map[port.Category]string

	// key-striped locks arbitrate concurrent writers to the same path
	locks [lockStripes]sync.Mutex

	mu    sync.RWMutex
	sizes map[port.Category]int64
	limit int64
}

// compile-time check: *Store must satisfy port.BlobCache
var _ port.BlobCache = (*Store)(nil)

// NewStore creates the category directories under root and computes the
// initial size figures.
func NewStore(root string) (*Store, error) {
	s := &Store{
		root:  root,
		dirs:  make(map[port.Category]string, len(port.Categories)),
		sizes: make(map[port.Category]int64, len(port.Categories)),
	}
	for _, cat := range port.Categories {
		dir := filepath.Join(root, string(cat))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache dir %q: %w", dir, err)
		}
		s.dirs[cat] = dir
	}
	if err := s.Recompute(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) blobPath(cat port.Category, sourceURL string) string {
	return filepath.Join(s.dirs[cat], Key(sourceURL)+cat.Ext())
}

func (s *Store) stripeFor(path string) *sync.Mutex {
	return &s.locks[xxhash.Sum64String(path)%lockStripes]
}

func (s *Store) Put(ctx context.Context, cat port.Category, sourceURL string, data []byte) error {
	if !cat.Valid() {
		return fmt.Errorf("invalid cache category %q", cat)
	}
	log.Printf("caching %d bytes for %q under %s...", len(data), sourceURL, cat)

	path := s.blobPath(cat, sourceURL)
	lock := s.stripeFor(path)
	lock.Lock()
	err := writeAtomic(path, data)
	lock.Unlock()
	if err != nil {
		return fmt.Errorf("writing blob for %q: %w", sourceURL, err)
	}
	return s.Recompute()
}

func (s *Store) Get(cat port.Category, sourceURL string) (string, bool) {
	path := s.blobPath(cat, sourceURL)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (s *Store) Has(cat port.Category, sourceURL string) bool {
	_, ok := s.Get(cat, sourceURL)
	return ok
}

// Writer stages a blob write; the entry only becomes visible once Close
// succeeds, so concurrent readers never observe a torn file.
func (s *Store) Writer(cat port.Category, sourceURL string) (io.WriteCloser, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("invalid cache category %q", cat)
	}
	path := s.blobPath(cat, sourceURL)
	tmp, err := os.CreateTemp(s.dirs[cat], filepath.Base(path)+".*"+stagingSuffix)
	if err != nil {
		return nil, fmt.Errorf("staging blob for %q: %w", sourceURL, err)
	}
	return &stagedWriter{store: s, tmp: tmp, final: path}, nil
}

type stagedWriter struct {
	store *Store
	tmp   *os.File
	final string
	done  bool
}

func (w *stagedWriter) Write(p []byte) (int, error) {
	return w.tmp.Write(p)
}

// Close commits the staged bytes. Abort discards them instead.
func (w *stagedWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	if err := w.tmp.Close(); err != nil {
		os.Remove(w.tmp.Name())
		return err
	}
	lock := w.store.stripeFor(w.final)
	lock.Lock()
	err := os.Rename(w.tmp.Name(), w.final)
	lock.Unlock()
	if err != nil {
		os.Remove(w.tmp.Name())
		return fmt.Errorf("committing blob %q: %w", w.final, err)
	}
	return w.store.Recompute()
}

// Abort discards the staged bytes without touching the cache entry.
func (w *stagedWriter) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	w.tmp.Close()
	return os.Remove(w.tmp.Name())
}

func (s *Store) DeleteOne(ctx context.Context, cat port.Category, sourceURL string) error {
	log.Printf("deleting cached blob for %q under %s...", sourceURL, cat)

	path := s.blobPath(cat, sourceURL)
	lock := s.stripeFor(path)
	lock.Lock()
	err := os.Remove(path)
	lock.Unlock()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing blob %q: %w", path, err)
	}
	return s.Recompute()
}

func (s *Store) ClearCategory(ctx context.Context, cat port.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("invalid cache category %q", cat)
	}
	log.Printf("clearing %s cache...", cat)

	if err := clearDir(s.dirs[cat]); err != nil {
		return err
	}
	return s.Recompute()
}

func (s *Store) ClearAll(ctx context.Context) error {
	log.Printf("clearing all cache categories...")

	for _, cat := range port.Categories {
		if err := clearDir(s.dirs[cat]); err != nil {
			return err
		}
	}
	return s.Recompute()
}

// SetLimit caps the total cache size; eviction runs after the next
// Recompute. Zero disables enforcement.
func (s *Store) SetLimit(maxBytes int64) {
	s.mu.Lock()
	s.limit = maxBytes
	s.mu.Unlock()
}

// Recompute walks every category directory summing file sizes, then evicts
// least-recently-modified blobs while the configured limit is exceeded.
func (s *Store) Recompute() error {
	sizes := make(map[port.Category]int64, len(port.Categories))
	var total int64
	for _, cat := range port.Categories {
		n, err := dirSize(s.dirs[cat])
		if err != nil {
			return fmt.Errorf("walking %s cache: %w", cat, err)
		}
		sizes[cat] = n
		total += n
	}

	s.mu.Lock()
	s.sizes = sizes
	limit := s.limit
	s.mu.Unlock()

	if limit > 0 && total > limit {
		if err := s.evictLRU(total, limit); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns the figures computed by the last Recompute; it never
// walks the filesystem.
func (s *Store) Snapshot() port.SizeSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := port.SizeSnapshot{
		ImageBytes: s.sizes[port.CategoryImage],
		AudioBytes: s.sizes[port.CategoryAudio],
		VideoBytes: s.sizes[port.CategoryVideo],
	}
	snap.TotalBytes = snap.ImageBytes + snap.AudioBytes + snap.VideoBytes

	for _, c := range []struct {
		name  string
		size  int64
		color string
	}{
		{"Photos", snap.ImageBytes, "#00FFFF"},
		{"Music", snap.AudioBytes, "#FF0000"},
		{"Videos", snap.VideoBytes, "#FF00FF"},
	} {
		if c.size == 0 {
			continue
		}
		pct := 0.0
		if snap.TotalBytes > 0 {
			pct = float64(c.size) / float64(snap.TotalBytes) * 100
		}
		snap.Categories = append(snap.Categories, port.CategorySize{
			Name:       c.name,
			SizeBytes:  c.size,
			Percentage: pct,
			Color:      c.color,
		})
	}
	return snap
}

type evictable struct {
	path    string
	size    int64
	modTime int64
}

func (s *Store) evictLRU(total, limit int64) error {
	var files []evictable
	for _, cat := range port.Categories {
		entries, err := os.ReadDir(s.dirs[cat])
		if err != nil {
			return fmt.Errorf("listing %s cache: %w", cat, err)
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasSuffix(e.Name(), stagingSuffix) {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			files = append(files, evictable{
				path:    filepath.Join(s.dirs[cat], e.Name()),
				size:    info.Size(),
				modTime: info.ModTime().UnixNano(),
			})
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].modTime < files[j].modTime })

	for _, f := range files {
		if total <= limit {
			break
		}
		log.Printf("evicting %q (%d bytes) to honour cache limit...", f.path, f.size)
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("evicting blob %q: %w", f.path, err)
		}
		total -= f.size
	}

	// refresh counters after eviction; limit check already satisfied
	sizes := make(map[port.Category]int64, len(port.Categories))
	for _, cat := range port.Categories {
		n, err := dirSize(s.dirs[cat])
		if err != nil {
			return fmt.Errorf("walking %s cache: %w", cat, err)
		}
		sizes[cat] = n
	}
	s.mu.Lock()
	s.sizes = sizes
	s.mu.Unlock()
	return nil
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, stagingSuffix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("listing %q: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %q: %w", e.Name(), err)
		}
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*"+stagingSuffix)
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
