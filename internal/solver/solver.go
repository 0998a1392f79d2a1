// internal/solver/solver.go
//
// Guess selection engine.
// Responsibilities:
//   - Filter: narrow a candidate set by one (guess, pattern) observation.
//   - Entropy: expected information (bits) a guess extracts from the
//     current candidate set.
//   - BestGuess: pick the highest-entropy guess from a pool, with a
//     deterministic tie-break.
//   - RankAll: score an entire pool, in parallel, for the one-time
//     first-move precompute.
//
// Filtering keeps exactly the words that would have produced the
// observed pattern, so the true target can never be filtered out by an
// honest observation.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordlebot/internal/feedback"
)

// ErrNoCandidates reports an observation inconsistent with every
// remaining candidate: either the feedback was entered wrong or state
// is corrupt. Session-fatal; never retried silently.
var ErrNoCandidates = errors.New("solver: no candidates consistent with feedback")

// Filter returns the members of candidates that would yield exactly
// pattern when the given guess is played against them. The result is
// never larger than the input. An empty result is an error.
func Filter(candidates []string, guess string, pattern feedback.Pattern) ([]string, error) {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if feedback.Evaluate(guess, w) == pattern {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w (guess %q, pattern %q)", ErrNoCandidates, guess, pattern.String())
	}
	return out, nil
}

// Entropy scores a guess by partitioning candidates into buckets by the
// pattern each one would produce, then taking the Shannon entropy of
// the bucket size distribution. Higher is better: a high-entropy guess
// splits the candidate set into many small buckets, so the observed
// pattern eliminates more words on average.
func Entropy(guess string, candidates []string) float64 {
	buckets := make(map[feedback.Pattern]int)
	for _, w := range candidates {
		buckets[feedback.Evaluate(guess, w)]++
	}
	n := float64(len(candidates))
	var bits float64
	for _, count := range buckets {
		p := float64(count) / n
		bits -= p * math.Log2(p)
	}
	return bits
}

// scoreEpsilon absorbs float noise when comparing entropies; scores
// closer than this are treated as tied.
const scoreEpsilon = 1e-9

// BestGuess returns the pool word with the highest entropy over
// candidates. Ties break by (a) preferring a guess that is itself a
// candidate, because it can win the game outright, then (b) ascending
// lexicographic order.
//
// A singleton candidate set short-circuits to that sole member with no
// scoring; an empty one is an error (the filter invariant was broken
// upstream).
func BestGuess(pool, candidates []string) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}
	if len(pool) == 0 {
		return "", errors.New("solver: empty guess pool")
	}

	isCandidate := make(map[string]bool, len(candidates))
	for _, w := range candidates {
		isCandidate[w] = true
	}

	best := ""
	bestBits := math.Inf(-1)
	bestIsCand := false
	for _, g := range pool {
		bits := Entropy(g, candidates)
		switch {
		case bits > bestBits+scoreEpsilon:
			// strictly better
		case bits < bestBits-scoreEpsilon:
			continue
		default:
			// tied on score
			if bestIsCand && !isCandidate[g] {
				continue
			}
			if bestIsCand == isCandidate[g] && g >= best {
				continue
			}
		}
		best, bestBits, bestIsCand = g, bits, isCandidate[g]
	}
	return best, nil
}

// Scored pairs a guess with its entropy.
type Scored struct {
	Word string
	Bits float64
}

// RankAll scores every pool word against candidates and returns the
// pool sorted best-to-worst (ties lexicographic). The pool is split
// into disjoint slices scored by independent workers sharing the
// read-only candidate set; results merge in a single sort afterwards.
//
// workers <= 0 means one per CPU. progress, if non-nil, is called once
// per scored word and may be invoked from multiple goroutines.
func RankAll(ctx context.Context, pool, candidates []string, workers int, progress func()) ([]Scored, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pool) {
		workers = len(pool)
	}

	scores := make([]Scored, len(pool))
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(pool) + workers - 1) / workers
	for start := 0; start < len(pool); start += chunk {
		start := start
		end := start + chunk
		if end > len(pool) {
			end = len(pool)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				scores[i] = Scored{Word: pool[i], Bits: Entropy(pool[i], candidates)}
				if progress != nil {
					progress()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Bits != scores[j].Bits {
			return scores[i].Bits > scores[j].Bits
		}
		return scores[i].Word < scores[j].Word
	})
	return scores, nil
}
