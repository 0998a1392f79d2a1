// internal/httpserver/server.go
//
// HTTP wiring for the solver API.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless suggestion: POST /suggest (history in, best guess out).
//   - Server-held sessions: POST /session/new, POST /session/guess.
//
// Notes:
//   - Sessions live in the in-memory store and die with the process.
//   - Malformed feedback patterns are a 400; feedback that contradicts
//     every remaining candidate is a 422 with the turn history attached.

package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlebot/internal/feedback"
	"github.com/robalobadob/wordlebot/internal/session"
	"github.com/robalobadob/wordlebot/internal/store"
	"github.com/robalobadob/wordlebot/internal/words"
)

// Server bundles router, session store, dictionary, and openers.
type Server struct {
	r       *chi.Mux
	store   store.Store
	dict    *words.Dictionary
	openers []string
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, dict *words.Dictionary, openers []string) *Server {
	s := &Server{r: chi.NewRouter(), store: st, dict: dict, openers: openers}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second)) // scoring a big pool can take a while
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordlebot","endpoints":["/health","POST /suggest","POST /session/new","POST /session/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"words":    s.dict.Len(),
			"dictId":   s.dict.ID(),
			"alphabet": s.dict.Alphabet().String(),
			"openers":  len(s.openers),
		})
	})

	s.r.Post("/suggest", s.handleSuggest)
	s.r.Post("/session/new", s.handleNewSession)
	s.r.Post("/session/guess", s.handleSessionGuess)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- /suggest ------------------------------------

// suggestReq carries a game history: guesses[i] paired with patterns[i]
// in prompt form ("+*-").
type suggestReq struct {
	Guesses  []string `json:"guesses"`
	Patterns []string `json:"patterns"`
	HardMode bool     `json:"hardMode"`
}

type suggestRes struct {
	Guess      string `json:"guess"`
	Candidates int    `json:"candidates"`
	Turn       int    `json:"turn"`
	State      string `json:"state"`
}

// handleSuggest replays the supplied history on a fresh session and
// returns the next best guess. Stateless; nothing is stored.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if len(req.Guesses) != len(req.Patterns) {
		http.Error(w, `{"error":"guesses and patterns must pair up"}`, http.StatusBadRequest)
		return
	}

	sess := session.New(s.dict, session.Options{HardMode: req.HardMode, Openers: s.openers})
	for i, g := range req.Guesses {
		p, err := feedback.Parse(req.Patterns[i])
		if err != nil {
			http.Error(w, `{"error":"bad_pattern","pattern":"`+req.Patterns[i]+`"}`, http.StatusBadRequest)
			return
		}
		if _, err := sess.Apply(g, p); err != nil {
			s.writeSessionError(w, err)
			return
		}
	}
	if sess.Status() != session.InProgress {
		_ = json.NewEncoder(w).Encode(suggestRes{
			Candidates: sess.CandidatesLeft(),
			Turn:       sess.Turn(),
			State:      sess.Status().String(),
		})
		return
	}
	guess, err := sess.NextGuess()
	if err != nil {
		log.Error().Err(err).Msg("suggest")
		http.Error(w, `{"error":"suggest_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestRes{
		Guess:      guess,
		Candidates: sess.CandidatesLeft(),
		Turn:       sess.Turn(),
		State:      sess.Status().String(),
	})
}

// ----------------------------- sessions ------------------------------------

type newSessionReq struct {
	HardMode bool `json:"hardMode"`
}

type sessionRes struct {
	SessionID  string `json:"sessionId"`
	Guess      string `json:"guess,omitempty"`
	Candidates int    `json:"candidates"`
	Turn       int    `json:"turn"`
	State      string `json:"state"`
}

// handleNewSession creates a session, stores it, and returns the
// opening suggestion.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess := session.New(s.dict, session.Options{HardMode: req.HardMode, Openers: s.openers})
	guess, err := sess.NextGuess()
	if err != nil {
		log.Error().Err(err).Msg("open session")
		http.Error(w, `{"error":"suggest_failed"}`, http.StatusInternalServerError)
		return
	}
	id := randomID()
	if err := s.store.Save(r.Context(), id, sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(sessionRes{
		SessionID:  id,
		Guess:      guess,
		Candidates: sess.CandidatesLeft(),
		Turn:       sess.Turn(),
		State:      sess.Status().String(),
	})
}

type sessionGuessReq struct {
	SessionID string `json:"sessionId"`
	Pattern   string `json:"pattern"`
}

// handleSessionGuess applies feedback for the session's pending guess
// and returns the next suggestion (or the terminal state).
func (s *Server) handleSessionGuess(w http.ResponseWriter, r *http.Request) {
	var req sessionGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	p, err := feedback.Parse(req.Pattern)
	if err != nil {
		http.Error(w, `{"error":"bad_pattern"}`, http.StatusBadRequest)
		return
	}
	if sess.LastGuess() == "" {
		http.Error(w, `{"error":"no_pending_guess"}`, http.StatusConflict)
		return
	}
	status, err := sess.Apply(sess.LastGuess(), p)
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	res := sessionRes{
		SessionID:  req.SessionID,
		Candidates: sess.CandidatesLeft(),
		Turn:       sess.Turn(),
		State:      status.String(),
	}
	if status == session.InProgress {
		guess, err := sess.NextGuess()
		if err != nil {
			log.Error().Err(err).Msg("next guess")
			http.Error(w, `{"error":"suggest_failed"}`, http.StatusInternalServerError)
			return
		}
		res.Guess = guess
	}
	if err := s.store.Save(r.Context(), req.SessionID, sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeSessionError maps session failures to HTTP. Inconsistent
// feedback is the caller's data problem, reported with full diagnostics.
func (s *Server) writeSessionError(w http.ResponseWriter, err error) {
	var ie *session.InconsistentError
	if errors.As(err, &ie) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":   "inconsistent_feedback",
			"turn":    ie.Turn,
			"guess":   ie.Guess,
			"pattern": ie.Pattern.String(),
			"history": historyStrings(ie.History),
		})
		return
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
}

func historyStrings(turns []session.Turn) []string {
	out := make([]string, len(turns))
	for i, t := range turns {
		out[i] = t.Guess + " " + t.Pattern.String()
	}
	return out
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
