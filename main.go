package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"wordlesolver/internal/cache"
	"wordlesolver/internal/dictionary"
	"wordlesolver/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel), appLogger)
	logInfo("Starting wordlesolver in %s mode", cfg.envName())

	words, err := dictionary.Load(cfg.WordsFile)
	if err != nil {
		logFatal("Failed to load words: %v", err)
	}
	logInfo("Loaded %d words from %s", len(words), cfg.WordsFile)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	app := NewApp(cfg, words)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.startSessionSweeper(ctx)
	startServer(ctx, cfg.Port, app.setupRouter())
}

// NewApp builds the service state around a loaded dictionary.
func NewApp(cfg Config, words []string) *App {
	return &App{
		Config:     cfg,
		Words:      words,
		InfoCache:  cache.NewInfoCache(cfg.InfoCacheTTL, cfg.InfoCacheTTL/2),
		Boards:     make(map[string]*Board),
		LimiterMap: make(map[string]*clientLimiter),
		StartTime:  time.Now(),
	}
}

// setupRouter registers middleware and routes.
func (app *App) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(cacheHeadersMiddleware(app.Config.IsProduction))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.GET(RouteHome, app.boardHandler)
	router.GET(RouteBoard, app.boardHandler)
	router.POST(RouteBoardRow, app.rowHandler)
	router.POST(RouteBoardToggle, app.toggleHandler)
	router.POST(RouteBoardReset, app.resetHandler)
	router.POST(RouteBoardSuggest, app.rateLimitMiddleware(), app.boardSuggestHandler)
	router.POST(RouteBoardInfo, app.rateLimitMiddleware(), app.boardInfoHandler)

	router.POST(RouteFilter, app.rateLimitMiddleware(), app.filterHandler)
	router.POST(RouteSuggest, app.rateLimitMiddleware(), app.suggestHandler)
	router.POST(RouteInfo, app.rateLimitMiddleware(), app.infoHandler)
	router.POST(RouteFeedback, app.rateLimitMiddleware(), app.feedbackHandler)

	router.GET(RouteHealthz, app.healthzHandler)
	return router
}

// startServer serves until ctx is cancelled, then shuts down gracefully.
func startServer(ctx context.Context, port string, router http.Handler) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
