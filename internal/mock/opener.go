package mock

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/tunewave/tunewave-go/internal/port"
)

// MediaOpener serves canned bytes and records which URLs were requested.
type MediaOpener struct {
	mu sync.Mutex

	Data map[string][]byte

	// errors
	OpenErr   error
	EnsureErr error

	// call records
	OpenedURLs  []string
	EnsuredURLs []string
}

func NewMediaOpener() *MediaOpener {
	return &MediaOpener{Data: make(map[string][]byte)}
}

func (m *MediaOpener) Open(ctx context.Context, cat port.Category, url string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OpenedURLs = append(m.OpenedURLs, url)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if b, ok := m.Data[url]; ok {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (m *MediaOpener) EnsureCached(ctx context.Context, cat port.Category, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnsuredURLs = append(m.EnsuredURLs, url)
	return m.EnsureErr
}

// Ensured reports whether EnsureCached was called for url.
func (m *MediaOpener) Ensured(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.EnsuredURLs {
		if u == url {
			return true
		}
	}
	return false
}
