// internal/feedback/feedback.go
//
// Pattern evaluation for a single guess against a target word.
// Responsibilities:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Pattern: the full 5-mark result, comparable so it can key maps.
//   - Evaluate: the classic two-pass scoring algorithm, correct for
//     repeated letters in both guess and target.
//   - Parse/String: the "+ * -" wire form used at the prompt.
//
// Everything here is pure and deterministic; malformed pattern text is
// the only error surface.
package feedback

import (
	"errors"
	"fmt"
)

// WordLen is the fixed word length the engine operates on.
const WordLen = 5

// Mark represents the evaluation result for a single letter in a guess.
type Mark uint8

const (
	// MarkMiss: letter does not occur in the target, or every occurrence
	// is already spoken for by a hit or an earlier present.
	MarkMiss Mark = iota
	// MarkPresent: letter occurs in the target at a different position.
	MarkPresent
	// MarkHit: letter is correct and in the correct position.
	MarkHit
)

// symbol is the prompt character for each mark.
func (m Mark) symbol() byte {
	switch m {
	case MarkHit:
		return '+'
	case MarkPresent:
		return '*'
	default:
		return '-'
	}
}

// Pattern is the positional sequence of marks for one guess.
// It is a value type and comparable, so it can be used as a map key
// when bucketing candidates by outcome.
type Pattern [WordLen]Mark

// ErrBadPattern reports malformed pattern input (wrong length or a
// character outside "+*-").
var ErrBadPattern = errors.New("feedback: pattern must be 5 characters from +*-")

// Evaluate computes the pattern a guess produces against a target.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) target letters.
//
// Pass 2:
//   - For each non-hit guess letter, left to right: if there is
//     remaining count for that letter, mark Present and decrement;
//     otherwise mark Miss.
//
// A letter appearing k times in the target and m>k times in the guess
// therefore yields exactly k Hit/Present marks among those m positions.
// Both inputs must be WordLen bytes; the words package guarantees that
// for anything drawn from a dictionary.
func Evaluate(guess, target string) Pattern {
	var p Pattern

	// Remaining per-letter budget for the non-hit positions. Indexed by
	// raw byte so letters and digits share one code path.
	var counts [128]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			p[i] = MarkHit
		} else {
			counts[target[i]]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == MarkHit {
			continue
		}
		if counts[guess[i]] > 0 {
			p[i] = MarkPresent
			counts[guess[i]]--
		} else {
			p[i] = MarkMiss
		}
	}
	return p
}

// AllHit reports whether every mark is a Hit, i.e. guess == target.
func (p Pattern) AllHit() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// String renders the pattern in prompt form, e.g. "+*--*".
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		b[i] = m.symbol()
	}
	return string(b[:])
}

// Parse converts prompt input back into a Pattern. Input must be
// exactly WordLen characters from "+*-"; anything else is rejected so
// the caller can re-prompt rather than guess at intent.
func Parse(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, fmt.Errorf("%w: got %d characters", ErrBadPattern, len(s))
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '+':
			p[i] = MarkHit
		case '*':
			p[i] = MarkPresent
		case '-':
			p[i] = MarkMiss
		default:
			return Pattern{}, fmt.Errorf("%w: %q at position %d", ErrBadPattern, s[i], i)
		}
	}
	return p, nil
}

// Solved is the all-hit pattern.
func Solved() Pattern {
	var p Pattern
	for i := range p {
		p[i] = MarkHit
	}
	return p
}
