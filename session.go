package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || len(sessionID) < 10 {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.Config.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.Config.CookieMaxAge.Seconds()), "/", "", secure, true)
		requestLogger(c.Request.Context()).Infof("Created new session: %s", sessionID)
	}
	return sessionID
}

// withBoard runs fn on the session's board under the session lock, creating
// the board if needed, and returns a copy of the board after fn.
func (app *App) withBoard(ctx context.Context, sessionID string, fn func(*Board) error) (*Board, error) {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()

	board, exists := app.Boards[sessionID]
	if !exists {
		requestLogger(ctx).Debugf("Creating new board for session: %s", sessionID)
		board = newBoard()
		app.Boards[sessionID] = board
	}
	board.LastAccessTime = time.Now()

	var err error
	if fn != nil {
		err = fn(board)
	}
	return board.clone(), err
}

// getBoard returns a copy of the session's board, creating it if needed.
func (app *App) getBoard(ctx context.Context, sessionID string) *Board {
	board, _ := app.withBoard(ctx, sessionID, nil)
	return board
}

// sessionCount returns the number of live boards.
func (app *App) sessionCount() int {
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	return len(app.Boards)
}

// cleanupExpiredSessions drops boards idle for longer than maxAge and
// returns how many were removed.
func (app *App) cleanupExpiredSessions(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	app.SessionMutex.Lock()
	for id, board := range app.Boards {
		if board.LastAccessTime.Before(cutoff) {
			delete(app.Boards, id)
			removed++
		}
	}
	app.SessionMutex.Unlock()

	if removed > 0 {
		logInfo("Session cleanup completed: removed %d idle boards", removed)
	}
	return removed
}

// startSessionSweeper removes idle boards and rate limiters every half
// session timeout until ctx is cancelled.
func (app *App) startSessionSweeper(ctx context.Context) {
	interval := app.Config.SessionTimeout / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.cleanupExpiredSessions(app.Config.SessionTimeout)
				if n := app.cleanupIdleLimiters(app.Config.SessionTimeout); n > 0 {
					logDebug("Removed %d idle rate limiters", n)
				}
			}
		}
	}()
}
