package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"wordlesolver/internal/cache"
	"wordlesolver/internal/solver"
)

type contextKey string

// App holds the loaded dictionary and all per-process state of the service.
type App struct {
	Config Config

	Words     []string // Dictionary in file order
	InfoCache *cache.InfoCache

	Boards       map[string]*Board
	SessionMutex sync.RWMutex // Protects Boards and the boards they hold

	LimiterMap   map[string]*clientLimiter // Keyed by client IP
	LimiterMutex sync.Mutex

	StartTime time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Board is one session's grid: six rows of typed letters with a colour per
// tile. Rows holding fewer than five letters are ignored when solving.
type Board struct {
	Words          [MaxGuesses]string          `json:"words"`
	Colors         [MaxGuesses]solver.Feedback `json:"colors"`
	LastAccessTime time.Time                   `json:"lastAccessTime"`
}
