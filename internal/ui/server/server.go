// Package server wires the front-end HTTP server: static browser bundle,
// the /ui-api JSON surface, metrics and health endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/homearc/homearc/internal/api"
	"github.com/homearc/homearc/internal/logger"
	"github.com/homearc/homearc/internal/notify"
	"github.com/homearc/homearc/internal/poll"
	"github.com/homearc/homearc/internal/ui/config"
	"github.com/homearc/homearc/internal/ui/handlers"
)

// ServerShutdownTimeout is the timeout for graceful server shutdown
const ServerShutdownTimeout = 10 * time.Second

type Server struct {
	router     *chi.Mux
	config     *config.Config
	logger     *zerolog.Logger
	httpLogger *zerolog.Logger
	apiClient  *api.Client
	hub        *notify.Hub
	poller     *poll.Poller
	store      *poll.Store
}

// NewServer builds the front-end server and its collaborators: the backend
// api client, the notification hub and the poller.
func NewServer(cfg *config.Config, serverLogger *zerolog.Logger, httpLogger *zerolog.Logger) (*Server, error) {
	hub := notify.NewHub()

	apiClient, err := api.NewClient(cfg.APIBaseURL, hub, api.WithTimeout(cfg.APITimeout))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	store := poll.NewStore()

	s := &Server{
		router:     chi.NewRouter(),
		config:     cfg,
		logger:     serverLogger,
		httpLogger: httpLogger,
		apiClient:  apiClient,
		hub:        hub,
		poller:     poll.New(apiClient, store, hub, serverLogger),
		store:      store,
	}

	s.setupMiddleware()
	s.registerRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logger.RequestLogging(s.httpLogger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Timeout(60 * time.Second))
	s.router.Use(SecurityHeaders(s.config.Environment))
	s.router.Use(CORS(strings.Split(s.config.AllowedOrigins, ",")))
}

func (s *Server) registerRoutes() {
	handlerService := &handlers.HandlerService{
		ApiClient:   s.apiClient,
		Store:       s.store,
		Hub:         s.hub,
		Environment: s.config.Environment,
	}

	// Static browser bundle
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.config.StaticDir))))

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Handle("/metrics", promhttp.Handler())

	rateLimit := RateLimit(s.config.RateLimitRPS, s.config.RateLimitBurst)

	// JSON endpoints used by the browser bundle
	s.router.Route("/ui-api", func(r chi.Router) {
		r.Use(rateLimit)
		r.Use(RequestSizeLimit(s.config.MaxRequestSize))

		r.Get("/version", handlerService.HandleVersion)
		r.Get("/snapshot", handlerService.HandleSnapshot)
		r.Get("/notifications", handlerService.HandleNotifications)

		r.Get("/settings", handlerService.HandleGetSettings)
		r.Patch("/settings", handlerService.HandleUpdateSettings)
		r.Get("/statistics", handlerService.HandleStatistics)

		r.Post("/hotspot/on", handlerService.HandleHotspotOn)
		r.Post("/hotspot/off", handlerService.HandleHotspotOff)
		r.Post("/throttle/on", handlerService.HandleThrottleOn)
		r.Post("/throttle/off", handlerService.HandleThrottleOff)

		r.Post("/search/files", handlerService.HandleSearchFiles)
		r.Post("/search/videos", handlerService.HandleSearchVideos)
		r.Post("/search/archives", handlerService.HandleSearchArchives)
		r.Get("/domains", handlerService.HandleDomains)

		r.Post("/files/list", handlerService.HandleListDirectory)
		r.Post("/files/delete", handlerService.HandleDeleteFiles)
		r.Post("/files/refresh", handlerService.HandleRefreshFiles)
		r.Get("/files/refresh/progress", handlerService.HandleRefreshProgress)

		r.Get("/downloads", handlerService.HandleGetDownloads)
		r.Post("/downloads", handlerService.HandleCreateDownload)
		r.Delete("/downloads/{id}", handlerService.HandleDeleteDownload)
		r.Post("/downloads/{id}/kill", handlerService.HandleKillDownload)
		r.Post("/downloads/kill", handlerService.HandleKillAllDownloads)
		r.Post("/downloads/enable", handlerService.HandleEnableDownloads)
		r.Post("/downloads/clear_completed", handlerService.HandleClearCompletedDownloads)
		r.Post("/downloads/clear_failed", handlerService.HandleClearFailedDownloads)
		r.Get("/downloaders", handlerService.HandleGetDownloaders)

		r.Get("/tags", handlerService.HandleGetTags)
		r.Post("/tags", handlerService.HandleSaveTag)
		r.Delete("/tags/{id}", handlerService.HandleDeleteTag)

		r.Get("/channels", handlerService.HandleGetChannels)
		r.Post("/channels", handlerService.HandleCreateChannel)
		r.Get("/channels/{id}", handlerService.HandleGetChannel)
		r.Put("/channels/{id}", handlerService.HandleUpdateChannel)
		r.Delete("/channels/{id}", handlerService.HandleDeleteChannel)
		r.Get("/channels/{id}/downloads", handlerService.HandleChannelDownloads)
		r.Post("/channels/{id}/download", handlerService.HandleDownloadChannel)

		r.Get("/videos/{id}", handlerService.HandleGetVideo)
		r.Delete("/videos/{id}", handlerService.HandleDeleteVideo)
		r.Post("/videos/favorite", handlerService.HandleVideoFavorite)
		r.Get("/videos/statistics", handlerService.HandleVideosStatistics)

		r.Get("/inventories", handlerService.HandleGetInventories)
		r.Post("/inventories", handlerService.HandleCreateInventory)
		r.Get("/inventories/{id}", handlerService.HandleGetInventory)
		r.Put("/inventories/{id}", handlerService.HandleUpdateInventory)
		r.Delete("/inventories/{id}", handlerService.HandleDeleteInventory)

		r.Get("/map/files", handlerService.HandleGetMapFiles)
		r.Post("/map/import", handlerService.HandleImportMapFiles)
		r.Get("/map/import_status", handlerService.HandleMapImportStatus)
	})

	// Uploads share the rate limiter but skip the JSON size limit - the
	// handler applies its own upload bound instead.
	s.router.With(rateLimit).Post("/ui-api/files/upload", handlerService.HandleUpload)
}

// Start runs the server and the poll loops until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	s.poller.Start(pollCtx)

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msgf("front-end server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down front-end server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ServerShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
	}

	return nil
}
