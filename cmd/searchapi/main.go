package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/cache"
	cacheRedis "github.com/cdcp/search-api/internal/cache/redis"
	"github.com/cdcp/search-api/internal/config"
	"github.com/cdcp/search-api/internal/domain/query"
	logpkg "github.com/cdcp/search-api/internal/logger"
	"github.com/cdcp/search-api/internal/metrics"
	searchrepo "github.com/cdcp/search-api/internal/repository/search"
	"github.com/cdcp/search-api/internal/solr"
	chiTransport "github.com/cdcp/search-api/internal/transport/chi"
	gen "github.com/cdcp/search-api/internal/transport/generated"
	healthuc "github.com/cdcp/search-api/internal/usecase/health"
	indexuc "github.com/cdcp/search-api/internal/usecase/index"
	searchuc "github.com/cdcp/search-api/internal/usecase/search"
	"github.com/cdcp/search-api/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting search API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("solr_url", cfg.Solr.BaseURL()),
		zap.String("item_core", cfg.Solr.ItemCore),
		zap.String("collection_core", cfg.Solr.CollectionCore),
	)

	// Register Solr metrics explicitly (no init())
	metrics.RegisterSolrMetrics()

	selectHandler := solr.HandlerSelect
	if cfg.Search.SpellHandler {
		selectHandler = solr.HandlerSpell
	}
	solrClient := solr.NewClient(solr.Config{
		BaseURL:        cfg.Solr.BaseURL(),
		ItemCore:       cfg.Solr.ItemCore,
		CollectionCore: cfg.Solr.CollectionCore,
		SelectHandler:  selectHandler,
		Timeout:        time.Duration(cfg.Solr.RequestTimeout) * time.Second,
		Logger:         logger,
	})

	// Wait for Solr to answer pings before serving traffic
	ctx := context.Background()
	if err := solrClient.WaitForReady(ctx, time.Duration(cfg.Solr.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Solr not ready", zap.Error(err))
	}
	logger.Info("Connected to Solr")

	// Optional select-response cache
	var cacheStore cache.Store
	if cfg.Cache.Enabled {
		store, err := cacheRedis.NewStore(cacheRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()
		cacheStore = store
		logger.Info("Select cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	var repo searchuc.Repository = searchrepo.New(solrClient)
	if cacheStore != nil {
		ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
		repo = searchrepo.NewCached(repo, cacheStore, ttl, metrics.SearchCacheTotal, logger)
	}

	// Create use case services
	translator := query.NewTranslator(cfg.Search.PageSize, nil)
	searchSvc := searchuc.New(repo, solrClient, translator).WithRows(cfg.Search.AllowedRows)
	indexSvc := indexuc.New(solrClient)
	healthSvc := healthuc.New(solrClient, cacheStore)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, indexSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	gen.HandlerWithOptions(server, gen.ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(gen.ErrorResponse{
				Code:    gen.ErrorResponseCodeBadRequest,
				Message: "invalid request",
			})
		},
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
