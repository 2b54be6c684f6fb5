package types

import "wordlesolver/internal/solver"

// GuessInput is one submitted guess. Feedback is either a compact pattern
// ("gybbg") or an array of tile values. It is nil when missing or null.
type GuessInput struct {
	Word     string           `json:"word"`
	Feedback *solver.Feedback `json:"feedback"`
}

// SolveRequest carries a guess history and, optionally, a dictionary to use
// instead of the loaded one.
type SolveRequest struct {
	Guesses []GuessInput `json:"guesses"`
	Words   []string     `json:"words,omitempty"`
}

type FilterResponse struct {
	Candidates []string `json:"candidates"`
	Count      int      `json:"count"`
	Empty      bool     `json:"empty"`
	Message    string   `json:"message,omitempty"`
	Rejected   []string `json:"rejected,omitempty"`
}

type SuggestResponse struct {
	Best        *solver.Scored  `json:"best,omitempty"`
	Suggestions []solver.Scored `json:"suggestions"`
	Count       int             `json:"count"`
	Empty       bool            `json:"empty"`
	Message     string          `json:"message,omitempty"`
	Rejected    []string        `json:"rejected,omitempty"`
}

type InfoResponse struct {
	Best           *solver.Scored  `json:"best,omitempty"`
	Words          []solver.Scored `json:"words"`
	GuessedLetters string          `json:"guessedLetters"`
	Rejected       []string        `json:"rejected,omitempty"`
}

type FeedbackRequest struct {
	Guess  string `json:"guess"`
	Secret string `json:"secret"`
}

type FeedbackResponse struct {
	Guess    string          `json:"guess"`
	Secret   string          `json:"secret"`
	Feedback solver.Feedback `json:"feedback"`
	Pattern  string          `json:"pattern"`
	Solved   bool            `json:"solved"`
}

// RowRequest sets the letters of one board row.
type RowRequest struct {
	Row  int    `json:"row"`
	Word string `json:"word"`
}

// ToggleRequest cycles the colour of one board tile.
type ToggleRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type BoardResponse struct {
	Words   []string          `json:"words"`
	Colors  []solver.Feedback `json:"colors"`
	Guesses solver.History    `json:"guesses"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
