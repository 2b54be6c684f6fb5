package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"
)

// getLimiter returns a rate limiter for the given key (usually client IP).
func (app *App) getLimiter(key string) *rate.Limiter {
	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	if cl, ok := app.LimiterMap[key]; ok {
		cl.lastSeen = time.Now()
		return cl.limiter
	}

	if key == "" || key == "::1" {
		logWarn("Rate limiter key is empty or loopback: %q", key)
	}
	rps := app.Config.RateLimitRPS
	if rps <= 0 {
		rps = 1
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), app.Config.RateLimitBurst)
	app.LimiterMap[key] = &clientLimiter{limiter: lim, lastSeen: time.Now()}
	return lim
}

// cleanupIdleLimiters drops the limiters of clients not seen for longer
// than maxAge and returns how many were removed.
func (app *App) cleanupIdleLimiters(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	app.LimiterMutex.Lock()
	defer app.LimiterMutex.Unlock()
	for key, cl := range app.LimiterMap {
		if cl.lastSeen.Before(cutoff) {
			delete(app.LimiterMap, key)
			removed++
		}
	}
	return removed
}

// rateLimitMiddleware returns a Gin middleware that enforces per-client rate limiting.
func (app *App) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !app.getLimiter(key).Allow() {
			requestLogger(c.Request.Context()).Warnf("Rate limit exceeded for %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down."})
			return
		}
		c.Next()
	}
}

// requestIDMiddleware injects a request ID into the context for each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.Request.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx := context.WithValue(c.Request.Context(), requestIDKey, reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}

// cacheHeadersMiddleware marks every response uncacheable. Rankings and
// boards change with each request body or session.
func cacheHeadersMiddleware(production bool) gin.HandlerFunc {
	noStore := cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})
	return func(c *gin.Context) {
		noStore(c)
		if production && strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Header("Vary", "Accept-Encoding")
		}
	}
}
