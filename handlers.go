package main

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wordlesolver/internal/dictionary"
	"wordlesolver/internal/solver"
	"wordlesolver/internal/types"
)

// admitGuesses keeps the guesses whose word is five letters a-z and that
// carry feedback, and describes the ones it drops.
func admitGuesses(inputs []types.GuessInput) (solver.History, []string) {
	var rejected []string
	h := make(solver.History, 0, len(inputs))
	for _, in := range inputs {
		word := solver.NormalizeWord(in.Word)
		if err := solver.ValidateWord(word); err != nil {
			rejected = append(rejected, word+": "+err.Error())
			continue
		}
		if in.Feedback == nil {
			rejected = append(rejected, word+": "+solver.ErrFeedback.Error()+": missing")
			continue
		}
		h = append(h, solver.Guess{Word: word, Feedback: *in.Feedback})
	}
	return h, rejected
}

// bindSolveRequest decodes the body into a SolveRequest. An empty body is
// an empty history.
func bindSolveRequest(c *gin.Context) (types.SolveRequest, bool) {
	var req types.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		requestLogger(c.Request.Context()).Warnf("Rejected solve request: %v", err)
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorBadRequest + ": " + err.Error()})
		return req, false
	}
	return req, true
}

// dictionaryFor returns the request's own word list when it has one, or the
// loaded dictionary. The bool reports whether the loaded one is used.
func (app *App) dictionaryFor(c *gin.Context, req types.SolveRequest) ([]string, bool, bool) {
	if len(req.Words) == 0 {
		return app.Words, true, true
	}
	if len(req.Words) > app.Config.MaxRequestWords {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorTooManyWords})
		return nil, false, false
	}
	words := dictionary.Normalize(req.Words)
	if len(words) == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: dictionary.ErrEmpty.Error()})
		return nil, false, false
	}
	return words, false, true
}

// suggestResponse filters and ranks dict for h.
func suggestResponse(dict []string, h solver.History, rejected []string) types.SuggestResponse {
	s := solver.Suggest(dict, h)
	resp := types.SuggestResponse{
		Best:        s.Best,
		Suggestions: s.Ranked,
		Count:       s.Count,
		Empty:       s.Empty(),
		Rejected:    rejected,
	}
	if resp.Empty {
		resp.Message = ErrorNoCandidates
	}
	return resp
}

// infoResponse ranks dict by info gain for the letters used in h. Rankings
// over the loaded dictionary are cached per letter set.
func (app *App) infoResponse(dict []string, loaded bool, h solver.History, rejected []string) types.InfoResponse {
	letters := h.Letters()
	compute := func() []solver.Scored {
		return solver.Top(solver.RankInfoGain(dict, letters), solver.InfoGainLimit)
	}

	var ranked []solver.Scored
	if loaded && app.InfoCache != nil {
		var hit bool
		ranked, hit = app.InfoCache.GetOrCompute(letters, compute)
		logDebug("Info ranking for %q (cache hit: %v)", letters.String(), hit)
	} else {
		ranked = compute()
	}

	resp := types.InfoResponse{
		Words:          ranked,
		GuessedLetters: letters.String(),
		Rejected:       rejected,
	}
	if len(ranked) > 0 {
		best := ranked[0]
		resp.Best = &best
	}
	return resp
}

// filterHandler returns every dictionary word consistent with the guesses.
func (app *App) filterHandler(c *gin.Context) {
	req, ok := bindSolveRequest(c)
	if !ok {
		return
	}
	dict, _, ok := app.dictionaryFor(c, req)
	if !ok {
		return
	}
	h, rejected := admitGuesses(req.Guesses)
	candidates := solver.FilterCandidates(dict, h)

	resp := types.FilterResponse{
		Candidates: candidates,
		Count:      len(candidates),
		Empty:      len(candidates) == 0,
		Rejected:   rejected,
	}
	if resp.Empty {
		resp.Message = ErrorNoCandidates
	}
	requestLogger(c.Request.Context()).Infof("Filtered %d words with %d guesses: %d left", len(dict), len(h), len(candidates))
	c.JSON(http.StatusOK, resp)
}

// suggestHandler ranks the surviving candidates by letter frequency.
func (app *App) suggestHandler(c *gin.Context) {
	req, ok := bindSolveRequest(c)
	if !ok {
		return
	}
	dict, _, ok := app.dictionaryFor(c, req)
	if !ok {
		return
	}
	h, rejected := admitGuesses(req.Guesses)
	c.JSON(http.StatusOK, suggestResponse(dict, h, rejected))
}

// infoHandler ranks the whole dictionary by untested letters.
func (app *App) infoHandler(c *gin.Context) {
	req, ok := bindSolveRequest(c)
	if !ok {
		return
	}
	dict, loaded, ok := app.dictionaryFor(c, req)
	if !ok {
		return
	}
	h, rejected := admitGuesses(req.Guesses)
	c.JSON(http.StatusOK, app.infoResponse(dict, loaded, h, rejected))
}

// feedbackHandler computes the tile colours a guess receives against a secret.
func (app *App) feedbackHandler(c *gin.Context) {
	var req types.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorBadRequest})
		return
	}
	guess, secret := solver.NormalizeWord(req.Guess), solver.NormalizeWord(req.Secret)
	for _, w := range []string{guess, secret} {
		if err := solver.ValidateWord(w); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: w + ": " + err.Error()})
			return
		}
	}
	fb := solver.Evaluate(guess, secret)
	c.JSON(http.StatusOK, types.FeedbackResponse{
		Guess:    guess,
		Secret:   secret,
		Feedback: fb,
		Pattern:  fb.String(),
		Solved:   fb.Solved(),
	})
}

func boardResponse(b *Board) types.BoardResponse {
	return types.BoardResponse{
		Words:   b.Words[:],
		Colors:  b.Colors[:],
		Guesses: b.history(),
	}
}

// boardHandler returns the current session's board.
func (app *App) boardHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	board := app.getBoard(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, boardResponse(board))
}

// rowHandler replaces the letters of one row.
func (app *App) rowHandler(c *gin.Context) {
	var req types.RowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorBadRequest})
		return
	}
	sessionID := app.getOrCreateSession(c)
	board, err := app.withBoard(c.Request.Context(), sessionID, func(b *Board) error {
		return b.setWord(req.Row, req.Word)
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, boardResponse(board))
}

// toggleHandler cycles one tile gray -> yellow -> green.
func (app *App) toggleHandler(c *gin.Context) {
	var req types.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: ErrorBadRequest})
		return
	}
	sessionID := app.getOrCreateSession(c)
	board, err := app.withBoard(c.Request.Context(), sessionID, func(b *Board) error {
		_, err := b.toggle(req.Row, req.Col)
		return err
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, boardResponse(board))
}

// resetHandler clears the session's board.
func (app *App) resetHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	board, _ := app.withBoard(c.Request.Context(), sessionID, func(b *Board) error {
		b.reset()
		return nil
	})
	requestLogger(c.Request.Context()).Infof("Reset board for session: %s", sessionID)
	c.JSON(http.StatusOK, boardResponse(board))
}

// boardSuggestHandler suggests the next guess from the board's complete rows.
func (app *App) boardSuggestHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	h := app.getBoard(c.Request.Context(), sessionID).history()
	if len(h) == 0 {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Error: ErrorNoGuesses})
		return
	}
	resp := suggestResponse(app.Words, h, nil)
	if resp.Best != nil {
		requestLogger(c.Request.Context()).Infof("Session %s: best suggestion %s (score %d) of %d matches",
			sessionID, resp.Best.Word, resp.Best.Score, resp.Count)
	}
	c.JSON(http.StatusOK, resp)
}

// boardInfoHandler suggests the word testing the most new letters.
func (app *App) boardInfoHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	h := app.getBoard(c.Request.Context(), sessionID).history()
	if len(h) == 0 {
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Error: ErrorNoGuessesInfo})
		return
	}
	c.JSON(http.StatusOK, app.infoResponse(app.Words, true, h, nil))
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"env":          app.Config.envName(),
		"words_loaded": len(app.Words),
		"sessions":     app.sessionCount(),
		"cached_info":  app.infoCacheLen(),
		"uptime":       formatUptime(uptime),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *App) infoCacheLen() int {
	if app.InfoCache == nil {
		return 0
	}
	return app.InfoCache.Len()
}
