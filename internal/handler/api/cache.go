package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/tunewave/tunewave-go/internal/api_context"
	"github.com/tunewave/tunewave-go/internal/port"
)

// CacheLimitPrefKey is the preferences row holding the persisted cache cap.
const CacheLimitPrefKey = "cache_limit_bytes"

type CacheLimitRequest struct {
	MaxBytes int64 `json:"max_bytes" validate:"gte=0"`
}

// CacheStatsHandler re-walks the cache directories and returns the fresh
// size breakdown.
func CacheStatsHandler(cache port.BlobCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := cache.Recompute(); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not compute cache sizes", err)
			return
		}
		RespondJSON(w, http.StatusOK, cache.Snapshot())
	}
}

func ClearCacheHandler(cache port.BlobCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := cache.ClearAll(r.Context()); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not clear the cache", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		log.Print("✅  Cleared the whole cache")
	}
}

func ClearCategoryHandler(cache port.BlobCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, ok := categoryFromRequest(w, r)
		if !ok {
			return
		}
		if err := cache.ClearCategory(r.Context(), cat); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not clear the category", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Cleared the %s cache", cat)
	}
}

// DeleteCacheEntryHandler removes a single blob, addressed by its source
// URL in the ?url= query parameter.
func DeleteCacheEntryHandler(cache port.BlobCache) http.HandlerFunc {
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

		if err := cache.DeleteOne(r.Context(), cat, url); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not delete the cache entry", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Deleted %q from the %s cache", url, cat)
	}
}

// SetCacheLimitHandler persists the new cap, applies it to the store and
// triggers an eviction pass. A zero cap disables eviction.
func SetCacheLimitHandler(cache port.BlobCache, prefs port.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CacheLimitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}
		if req.MaxBytes < 0 {
			WriteError(w, http.StatusBadRequest, "max_bytes must not be negative", nil)
			return
		}

		if err := prefs.SetPreference(r.Context(), CacheLimitPrefKey, strconv.FormatInt(req.MaxBytes, 10)); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not persist the cache limit", err)
			return
		}

		cache.SetLimit(req.MaxBytes)
		if err := cache.Recompute(); err != nil {
			WriteError(w, http.StatusInternalServerError, "could not apply the cache limit", err)
			return
		}

		RespondJSON(w, http.StatusOK, cache.Snapshot())
		log.Printf("✅  Cache limit set to %d bytes", req.MaxBytes)
	}
}

func categoryFromRequest(w http.ResponseWriter, r *http.Request) (port.Category, bool) {
	raw, ok := api_context.CategoryFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusBadRequest, "cache category is required", nil)
		return "", false
	}
	cat, err := port.ParseCategory(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "unknown cache category", err)
		return "", false
	}
	return cat, true
}
