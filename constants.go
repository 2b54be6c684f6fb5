package main

import "wordlesolver/internal/solver"

// Board dimensions
const (
	MaxGuesses = solver.MaxGuesses // Rows on the board
	WordLength = solver.WordLength // Tiles per row
)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome         = "/"
	RouteBoard        = "/board"
	RouteBoardRow     = "/board/row"
	RouteBoardToggle  = "/board/toggle"
	RouteBoardSuggest = "/board/suggest"
	RouteBoardInfo    = "/board/info"
	RouteBoardReset   = "/board/reset"
	RouteFilter       = "/api/filter"
	RouteSuggest      = "/api/suggest"
	RouteInfo         = "/api/info"
	RouteFeedback     = "/api/feedback"
	RouteHealthz      = "/healthz"
)

// Error message constants
const (
	ErrorBadRequest    = "invalid request body"
	ErrorInvalidRow    = "row must be between 0 and 5"
	ErrorInvalidCol    = "column must be between 0 and 4"
	ErrorInvalidLetter = "word may only contain the letters a-z"
	ErrorTooLong       = "word must be at most 5 letters"
	ErrorNoGuesses     = "no valid guesses entered yet"
	ErrorNoGuessesInfo = "please enter at least one guess first"
	ErrorNoCandidates  = "no possible words found with current constraints"
	ErrorTooManyWords  = "too many dictionary words in request"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
