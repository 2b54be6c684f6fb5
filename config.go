package main

import (
	"os"
	"time"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	Port            string
	WordsFile       string
	LogLevel        string
	IsProduction    bool
	SessionTimeout  time.Duration
	CookieMaxAge    time.Duration
	InfoCacheTTL    time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
	MaxRequestWords int
}

// loadConfig reads every setting, falling back to defaults on missing or
// malformed values.
func loadConfig() Config {
	return Config{
		Port:            getEnvString("PORT", "8080"),
		WordsFile:       getEnvString("WORDS_FILE", "data/words.txt"),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		IsProduction:    os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		SessionTimeout:  getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:    getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		InfoCacheTTL:    getEnvDuration("INFO_CACHE_TTL", 30*time.Minute),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		MaxRequestWords: getEnvInt("MAX_REQUEST_WORDS", 20000),
	}
}

// envName returns the display name for the running mode.
func (c Config) envName() string {
	return map[bool]string{true: "production", false: "development"}[c.IsProduction]
}
