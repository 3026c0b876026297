package api

import (
	"io"
	"log"
	"net/http"

	"github.com/tunewave/tunewave-go/internal/port"
)

var mediaContentTypes = map[port.Category]string{
	port.CategoryImage: "image/jpeg",
	port.CategoryAudio: "audio/mpeg",
	port.CategoryVideo: "video/mp4",
}

// StreamMediaHandler serves a blob addressed by its source URL: straight
// from the cache when present, otherwise proxied from the remote host while
// the bytes are teed into the cache.
func StreamMediaHandler(opener port.MediaOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, ok := categoryFromRequest(w, r)
		if !ok {
			return
		}
		url := r.URL.Query().Get("url")
		if url == "" {
			WriteError(w, http.StatusBadRequest, "url query parameter is required", nil)
			return
		}

		rc, err := opener.Open(r.Context(), cat, url)
		if err != nil {
			WriteError(w, http.StatusBadGateway, "could not open the media stream", err)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", mediaContentTypes[cat])
		if _, err := io.Copy(w, rc); err != nil {
			// headers are already gone; nothing to do but log
			log.Printf("⚠️  streaming %q aborted: %v", url, err)
			return
		}
		log.Printf("✅  Streamed %q from the %s cache path", url, cat)
	}
}
