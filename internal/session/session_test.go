package session

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/robalobadob/wordlebot/internal/feedback"
	"github.com/robalobadob/wordlebot/internal/solver"
	"github.com/robalobadob/wordlebot/internal/words"
)

func testDict(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.New([]string{"doily", "hullo", "knoll", "stela", "crane", "slate"}, words.Letters)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSolveAgainstKnownTarget(t *testing.T) {
	d := testDict(t)
	target := "knoll"
	s := New(d, Options{Rand: rand.New(rand.NewSource(1))})

	for s.Status() == InProgress {
		g, err := s.NextGuess()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.ApplyPattern(feedback.Evaluate(g, target)); err != nil {
			t.Fatal(err)
		}
	}
	if s.Status() != Solved {
		t.Fatalf("status = %v, want Solved (history %v)", s.Status(), s.Turns())
	}
	last := s.Turns()[len(s.Turns())-1]
	if last.Guess != target {
		t.Fatalf("solved on %q, want %q", last.Guess, target)
	}
	if len(s.Turns()) > DefaultMaxTurns {
		t.Fatalf("took %d turns", len(s.Turns()))
	}
}

func TestCandidateSetShrinks(t *testing.T) {
	d := testDict(t)
	s := New(d, Options{})
	before := s.CandidatesLeft()
	g, err := s.NextGuess()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Apply(g, feedback.Evaluate(g, "doily")); err != nil {
		t.Fatal(err)
	}
	if s.CandidatesLeft() > before {
		t.Fatalf("candidate set grew: %d -> %d", before, s.CandidatesLeft())
	}
}

func TestOpenerUsedOnFirstTurn(t *testing.T) {
	d := testDict(t)
	s := New(d, Options{Openers: []string{"crane"}, Rand: rand.New(rand.NewSource(1))})
	g, err := s.NextGuess()
	if err != nil {
		t.Fatal(err)
	}
	if g != "crane" {
		t.Fatalf("first guess = %q, want opener crane", g)
	}
}

func TestInconsistentFeedbackAborts(t *testing.T) {
	d := testDict(t)
	s := New(d, Options{})
	// All-present is impossible for crane against this dictionary.
	p, _ := feedback.Parse("*****")
	_, err := s.Apply("crane", p)
	if err == nil {
		t.Fatal("expected error")
	}
	var ie *InconsistentError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %T, want *InconsistentError", err)
	}
	if !errors.Is(err, solver.ErrNoCandidates) {
		t.Error("InconsistentError should unwrap to ErrNoCandidates")
	}
	if ie.Turn != 1 || ie.Guess != "crane" {
		t.Errorf("diagnostics: turn=%d guess=%q", ie.Turn, ie.Guess)
	}
	if s.Status() != Aborted {
		t.Fatalf("status = %v, want Aborted", s.Status())
	}
	// Terminal: further moves refused.
	if _, err := s.NextGuess(); err == nil {
		t.Error("NextGuess after abort should fail")
	}
}

func TestExhaustedAtTurnCap(t *testing.T) {
	d := testDict(t)
	s := New(d, Options{MaxTurns: 2})
	for i := 0; i < 2; i++ {
		// Honest feedback for a target we never guess.
		st, err := s.Apply([]string{"crane", "slate"}[i], feedback.Evaluate([]string{"crane", "slate"}[i], "hullo"))
		if err != nil {
			t.Fatal(err)
		}
		if i == 1 && st != Exhausted {
			t.Fatalf("status after cap = %v, want Exhausted", st)
		}
	}
}

func TestSolvedIsTerminal(t *testing.T) {
	d := testDict(t)
	s := New(d, Options{})
	if _, err := s.Apply("crane", feedback.Solved()); err != nil {
		t.Fatal(err)
	}
	if s.Status() != Solved {
		t.Fatalf("status = %v", s.Status())
	}
	if _, err := s.Apply("slate", feedback.Solved()); err == nil {
		t.Error("Apply on a solved session should fail")
	}
}

// With a hit and a miss on record, hard mode must keep every suggested
// guess consistent with both.
func TestHardModeRestrictsGuesses(t *testing.T) {
	d, err := words.New([]string{"sandy", "sonar", "irony", "sulky", "suavy"}, words.Letters)
	if err != nil {
		t.Fatal(err)
	}
	s := New(d, Options{HardMode: true})
	// s hit at position 0, a present, l/t/e missing.
	p, _ := feedback.Parse("+-*--")
	if _, err := s.Apply("slate", p); err != nil {
		t.Fatal(err)
	}
	g, err := s.NextGuess()
	if err != nil {
		t.Fatal(err)
	}
	if g[0] != 's' {
		t.Errorf("guess %q violates the locked s", g)
	}
	for _, c := range []byte{'l', 't', 'e'} {
		for i := 0; i < len(g); i++ {
			if g[i] == c {
				t.Errorf("guess %q contains banned letter %c", g, c)
			}
		}
	}
}

func TestApplyPatternNeedsPendingGuess(t *testing.T) {
	d := testDict(t)
	s := New(d, Options{})
	if _, err := s.ApplyPattern(feedback.Solved()); err == nil {
		t.Error("ApplyPattern without a suggestion should fail")
	}
}
