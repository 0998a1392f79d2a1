// internal/solver/hardmode.go
//
// Hard-mode legality constraints derived from game history. In hard
// mode every subsequent guess must reuse all revealed information:
// locked positions must match, discovered letters must keep appearing,
// and letters proven absent must not appear. The constraints restrict
// only the guess pool; candidate filtering is strictly stronger and is
// enforced separately.
package solver

import "github.com/robalobadob/wordlebot/internal/feedback"

// HardMode accumulates constraints from observed (guess, pattern) pairs.
type HardMode struct {
	locked   [feedback.WordLen]byte // 0 = unconstrained
	minCount map[byte]int           // letter -> minimum occurrences
	banned   map[byte]bool          // letter proven absent
}

// NewHardMode returns an empty constraint set.
func NewHardMode() *HardMode {
	return &HardMode{
		minCount: make(map[byte]int),
		banned:   make(map[byte]bool),
	}
}

// Observe folds one turn's feedback into the constraint set.
//
// Per guess: a Hit locks its position; each letter's Hit+Present marks
// in this guess set a floor on its occurrence count; a Miss bans the
// letter only when the same guess earned it no Hit or Present elsewhere
// (otherwise the miss just means "no further copies").
func (h *HardMode) Observe(guess string, pattern feedback.Pattern) {
	// Hit+Present count per letter, this guess only.
	counts := make(map[byte]int, feedback.WordLen)

	for i := 0; i < feedback.WordLen; i++ {
		c := guess[i]
		switch pattern[i] {
		case feedback.MarkHit:
			h.locked[i] = c
			counts[c]++
		case feedback.MarkPresent:
			counts[c]++
		}
	}

	for c, n := range counts {
		if n > h.minCount[c] {
			h.minCount[c] = n
		}
		// A letter confirmed present can never be banned.
		delete(h.banned, c)
	}

	for i := 0; i < feedback.WordLen; i++ {
		c := guess[i]
		if pattern[i] == feedback.MarkMiss && counts[c] == 0 {
			h.banned[c] = true
		}
	}
}

// Allows reports whether w satisfies every accumulated constraint.
func (h *HardMode) Allows(w string) bool {
	for i := 0; i < feedback.WordLen; i++ {
		if h.locked[i] != 0 && w[i] != h.locked[i] {
			return false
		}
		if h.banned[w[i]] {
			return false
		}
	}
	for c, min := range h.minCount {
		have := 0
		for i := 0; i < feedback.WordLen; i++ {
			if w[i] == c {
				have++
			}
		}
		if have < min {
			return false
		}
	}
	return true
}

// FilterPool returns the legal subset of pool. When no constraints have
// been observed yet the pool comes back unchanged.
func (h *HardMode) FilterPool(pool []string) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if h.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}
