// internal/session/session.go
//
// Turn state machine for a single solving session.
// Responsibilities:
//   - Track the candidate set, turn history, and status across turns.
//   - Suggest the next guess: opener cache on turn 1, entropy scoring
//     afterwards, hard-mode pool restriction when enabled.
//   - Apply one (guess, pattern) observation and classify the result:
//     solved on all-hit, exhausted at the turn cap, aborted when the
//     observation contradicts every remaining candidate.
//
// Solved, Exhausted, and Aborted are terminal; a new Session is cheap,
// so finished sessions are thrown away rather than reset.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/robalobadob/wordlebot/internal/feedback"
	"github.com/robalobadob/wordlebot/internal/firstmove"
	"github.com/robalobadob/wordlebot/internal/solver"
	"github.com/robalobadob/wordlebot/internal/words"
)

// DefaultMaxTurns is the classic six-guess cap.
const DefaultMaxTurns = 6

// Status is the session lifecycle state.
type Status int

const (
	InProgress Status = iota
	Solved
	Exhausted
	Aborted
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return "in progress"
	}
}

// Turn records one observation.
type Turn struct {
	Guess   string
	Pattern feedback.Pattern
}

// InconsistentError is the session-fatal report for feedback that no
// remaining candidate can explain. It carries the full history so the
// situation can be reproduced.
type InconsistentError struct {
	Turn    int
	Guess   string
	Pattern feedback.Pattern
	History []Turn
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("session: turn %d: feedback %q for guess %q matches no remaining candidate (history: %d turns)",
		e.Turn, e.Pattern.String(), e.Guess, len(e.History))
}

func (e *InconsistentError) Unwrap() error { return solver.ErrNoCandidates }

// Options configures a Session.
type Options struct {
	MaxTurns int          // 0 means DefaultMaxTurns
	HardMode bool         // restrict the guess pool by revealed constraints
	Openers  []string     // precomputed first moves; empty falls back to scoring
	Rand     *rand.Rand   // drives opener choice; nil seeds from the clock

	// PoolFromCandidates caps the guess pool to the current candidate
	// set after turn 1. Cheaper on big dictionaries, marginally weaker
	// guesses.
	PoolFromCandidates bool
}

// Session holds the state of one game from the agent's side.
type Session struct {
	dict       *words.Dictionary
	candidates []string
	turns      []Turn
	status     Status
	maxTurns   int
	hard       *solver.HardMode
	openers    []string
	rng        *rand.Rand
	poolCap    bool
	pending    string // last suggested, not yet observed guess
}

// New starts a session with the full dictionary as candidate set.
func New(dict *words.Dictionary, opts Options) *Session {
	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Session{
		dict:       dict,
		candidates: dict.Words(),
		maxTurns:   maxTurns,
		openers:    opts.Openers,
		rng:        rng,
		poolCap:    opts.PoolFromCandidates,
	}
	if opts.HardMode {
		s.hard = solver.NewHardMode()
	}
	return s
}

// NextGuess suggests the next move. Turn 1 draws uniformly from the
// opener list when one is available; later turns score the pool. The
// suggestion is remembered so ApplyPattern can pair it with feedback.
func (s *Session) NextGuess() (string, error) {
	if s.status != InProgress {
		return "", fmt.Errorf("session: cannot guess, session is %s", s.status)
	}

	if len(s.turns) == 0 && len(s.openers) > 0 {
		s.pending = firstmove.Pick(s.openers, s.rng)
		return s.pending, nil
	}

	pool := s.dict.Words()
	if s.poolCap && len(s.turns) > 0 {
		pool = s.candidates
	}
	if s.hard != nil {
		if legal := s.hard.FilterPool(pool); len(legal) > 0 {
			pool = legal
		}
	}
	g, err := solver.BestGuess(pool, s.candidates)
	if err != nil {
		return "", err
	}
	s.pending = g
	return g, nil
}

// Apply folds one observation into the session and returns the new
// status. An all-hit pattern solves; an inconsistent one aborts with an
// InconsistentError; hitting the turn cap without solving exhausts.
func (s *Session) Apply(guess string, pattern feedback.Pattern) (Status, error) {
	if s.status != InProgress {
		return s.status, fmt.Errorf("session: cannot apply, session is %s", s.status)
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != words.Length || !s.dict.Alphabet().Valid(guess) {
		return s.status, fmt.Errorf("session: invalid guess %q", guess)
	}

	s.turns = append(s.turns, Turn{Guess: guess, Pattern: pattern})
	s.pending = ""
	if s.hard != nil {
		s.hard.Observe(guess, pattern)
	}

	if pattern.AllHit() {
		s.status = Solved
		return s.status, nil
	}

	next, err := solver.Filter(s.candidates, guess, pattern)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			s.status = Aborted
			return s.status, &InconsistentError{
				Turn:    len(s.turns),
				Guess:   guess,
				Pattern: pattern,
				History: s.Turns(),
			}
		}
		return s.status, err
	}
	s.candidates = next

	if len(s.turns) >= s.maxTurns {
		s.status = Exhausted
	}
	return s.status, nil
}

// ApplyPattern applies feedback to the most recent NextGuess suggestion.
func (s *Session) ApplyPattern(pattern feedback.Pattern) (Status, error) {
	if s.pending == "" {
		return s.status, errors.New("session: no pending guess to apply feedback to")
	}
	return s.Apply(s.pending, pattern)
}

// Status reports the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Turn reports the number of the next turn to be played, starting at 1.
func (s *Session) Turn() int { return len(s.turns) + 1 }

// Turns returns a copy of the observation history.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// CandidatesLeft reports the size of the current candidate set.
func (s *Session) CandidatesLeft() int { return len(s.candidates) }

// LastGuess returns the pending suggestion, if any.
func (s *Session) LastGuess() string { return s.pending }
