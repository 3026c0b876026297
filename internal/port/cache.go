package port

import (
	"context"
	"fmt"
	"io"
)

// Category identifies one of the three blob stores on disk.
type Category string

const (
	CategoryImage Category = "Images"
	CategoryAudio Category = "Audio"
	CategoryVideo Category = "Video"
)

// Categories lists every valid category, in display order.
var Categories = []Category{CategoryImage, CategoryAudio, CategoryVideo}

// Ext returns the file extension blobs of this category are stored under.
func (c Category) Ext() string {
	switch c {
	case CategoryImage:
		return ".jpg"
	case CategoryAudio:
		return ".mp3"
	case CategoryVideo:
		return ".mp4"
	}
	return ""
}

func (c Category) Valid() bool {
	return c == CategoryImage || c == CategoryAudio || c == CategoryVideo
}

// ParseCategory maps a request-path segment to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "images", string(CategoryImage):
		return CategoryImage, nil
	case "audio", string(CategoryAudio):
		return CategoryAudio, nil
	case "video", string(CategoryVideo):
		return CategoryVideo, nil
	}
	return "", fmt.Errorf("unknown cache category %q", s)
}

// CategorySize is one slice of the cache-usage breakdown.
type CategorySize struct {
	Name       string  `json:"name"`
	SizeBytes  int64   `json:"size_bytes"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// SizeSnapshot carries the last computed cache sizes. It is derived state:
// Recompute walks the directories, Snapshot only reads the stored figures.
type SizeSnapshot struct {
	TotalBytes int64          `json:"total_bytes"`
	ImageBytes int64          `json:"image_bytes"`
	AudioBytes int64          `json:"audio_bytes"`
	VideoBytes int64          `json:"video_bytes"`
	Categories []CategorySize `json:"categories"`
}

// BlobCache is the local disk store of downloaded media blobs, keyed by
// (category, source URL). At most one blob per key; re-caching overwrites.
type BlobCache interface {
	Put(ctx context.Context, cat Category, sourceURL string, data []byte) error
	// Get returns the path of the cached blob, or false when absent.
	Get(cat Category, sourceURL string) (string, bool)
	Has(cat Category, sourceURL string) bool
	// Writer returns a staged writer for the key; bytes become visible
	// atomically when Close succeeds.
	Writer(cat Category, sourceURL string) (io.WriteCloser, error)
	DeleteOne(ctx context.Context, cat Category, sourceURL string) error
	ClearCategory(ctx context.Context, cat Category) error
	ClearAll(ctx context.Context) error
	Snapshot() SizeSnapshot
	Recompute() error
	// SetLimit caps total cache size in bytes; 0 disables eviction.
	SetLimit(maxBytes int64)
}
