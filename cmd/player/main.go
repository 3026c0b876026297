package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tunewave/tunewave-go/internal/backend"
	"github.com/tunewave/tunewave-go/internal/cache"
	"github.com/tunewave/tunewave-go/internal/config"
	"github.com/tunewave/tunewave-go/internal/db"
	"github.com/tunewave/tunewave-go/internal/fetcher"
	"github.com/tunewave/tunewave-go/internal/handler/api"
	"github.com/tunewave/tunewave-go/internal/logger"
	cMiddleware "github.com/tunewave/tunewave-go/internal/middleware"
	"github.com/tunewave/tunewave-go/internal/migration"
	"github.com/tunewave/tunewave-go/internal/playback"
	"github.com/tunewave/tunewave-go/internal/player"
	"github.com/tunewave/tunewave-go/internal/port"
	"github.com/tunewave/tunewave-go/internal/repository/sqlite"
	authSvc "github.com/tunewave/tunewave-go/internal/usecase/auth"
	librarySvc "github.com/tunewave/tunewave-go/internal/usecase/library"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)
	sessions := sqlite.NewSessionRepository(database.DB)

	store := initCache(ctx, cfg, sessions)

	client := backend.NewClient(cfg.BackendBaseURL, cfg.HTTPTimeout)
	media := fetcher.New(store, client)

	currentUser := authSvc.NewCurrentUser(sessions)
	signIn := authSvc.NewSignIn(client, client, sessions)
	signOut := authSvc.NewSignOut(sessions)

	library := librarySvc.NewService(client, client, currentUser)
	shorts := librarySvc.NewShorts(client, currentUser)
	playlists := librarySvc.NewPlaylists(client, currentUser)
	feed := librarySvc.NewFeed(client, currentUser)

	arbiter := playback.NewArbiter()
	tracks := playback.NewCoordinator(player.NewBeep(), media, arbiter, cfg.PollInterval)
	samples := playback.NewSamplesCoordinator(player.NewBeep(), media, arbiter)

	r := initRouter(ctx, currentUser)

	r.Post("/auth/sign-in", api.SignInHandler(signIn))
	r.Post("/auth/sign-out", api.SignOutHandler(signOut))
	r.Get("/auth/me", api.MeHandler(currentUser))

	r.Get("/library/songs", api.GetSongsHandler(library))
	r.Get("/library/songs/liked", api.GetLikedSongsHandler(library))
	r.Get("/library/songs/disliked", api.GetDislikedSongsHandler(library))
	r.With(cMiddleware.WithSongID()).
		Post("/library/songs/{id}/like", api.RateSongHandler(library, port.RatingLike))
	r.With(cMiddleware.WithSongID()).
		Post("/library/songs/{id}/dislike", api.RateSongHandler(library, port.RatingDislike))

	r.Get("/shorts", api.GetShortsHandler(shorts))
	r.Get("/playlists", api.GetPlaylistsHandler(playlists))
	r.With(cMiddleware.WithPlaylistID()).
		Get("/playlists/{id}", api.GetPlaylistHandler(playlists))
	r.Get("/feed/stories", api.GetStoriesHandler(feed))
	r.Get("/feed/followers", api.GetFollowersHandler(feed))

	r.Post("/playback/play", api.PlayHandler(tracks, library))
	r.Post("/playback/toggle", api.TogglePlaybackHandler(tracks))
	r.Post("/playback/next", api.NextHandler(tracks))
	r.Post("/playback/previous", api.PreviousHandler(tracks))
	r.Post("/playback/seek", api.SeekHandler(tracks))
	r.Post("/playback/shuffle", api.ShuffleHandler(tracks))
	r.Get("/playback/status", api.PlaybackStatusHandler(tracks))

	r.Post("/samples/play", api.PlaySampleHandler(samples, shorts))
	r.Post("/samples/toggle", api.ToggleSampleHandler(samples))
	r.Get("/samples/status", api.SampleStatusHandler(samples))

	r.Get("/cache/stats", api.CacheStatsHandler(store))
	r.Delete("/cache", api.ClearCacheHandler(store))
	r.With(cMiddleware.WithCategory()).
		Delete("/cache/{category}", api.ClearCategoryHandler(store))
	r.With(cMiddleware.WithCategory()).
		Delete("/cache/{category}/entry", api.DeleteCacheEntryHandler(store))
	r.Put("/settings/cache-limit", api.SetCacheLimitHandler(store, sessions))

	r.With(cMiddleware.WithCategory()).
		Get("/media/{category}", api.StreamMediaHandler(media))

	listenRouter(ctx, r, cfg, database, tracks, samples)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.SQLitePath)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to open db: %v", err)
		os.Exit(1)
	}

	if err := migration.MigrateUp(database.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	return database
}

// initCache builds the blob store and applies the persisted size cap; an
// explicit CACHE_MAX_BYTES env value wins over the stored preference.
func initCache(ctx context.Context, cfg *config.Settings, prefs port.SessionStore) *cache.Store {
	logger.Info(ctx, "initialising blob cache...")

	store, err := cache.NewStore(cfg.CacheDir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise the blob cache: %v", err)
		os.Exit(1)
	}

	limit := cfg.CacheMaxBytes
	if limit == 0 {
		if v, ok, err := prefs.GetPreference(ctx, api.CacheLimitPrefKey); err == nil && ok {
			if parsed, perr := strconv.ParseInt(v, 10, 64); perr == nil {
				limit = parsed
			}
		}
	}
	if limit > 0 {
		store.SetLimit(limit)
		if err := store.Recompute(); err != nil {
			logger.Warnf(ctx, "⚠️  Initial cache sweep failed: %v", err)
		}
	}

	return store
}

func initRouter(ctx context.Context, who port.CurrentUserProvider) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithCurrentUser(who))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database, tracks *playback.Coordinator, samples *playback.SamplesCoordinator) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 Control API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := tracks.Close(); err != nil {
		logger.Warnf(ctx, "⚠️  Track player close error: %v", err)
	}
	if err := samples.Close(); err != nil {
		logger.Warnf(ctx, "⚠️  Sample player close error: %v", err)
	}

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
