// internal/sim/sim.go
//
// Statistical test harness: plays many automated sessions with the
// pattern evaluator standing in for a human, then aggregates outcomes.
//
// Determinism: all randomness flows from Config.Seed. Targets and
// per-game seeds are drawn up front, before any session starts, so the
// report is identical across runs regardless of worker count. Sessions
// share nothing; the histogram is a single reduce after every game has
// finished.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordlebot/internal/feedback"
	"github.com/robalobadob/wordlebot/internal/session"
	"github.com/robalobadob/wordlebot/internal/words"
)

// Config controls a simulation run.
type Config struct {
	Games    int
	Seed     int64
	Workers  int // concurrent sessions; <=1 runs serially
	MaxTurns int // 0 means session.DefaultMaxTurns
	HardMode bool

	// Targets pins the answer of each game. Empty draws targets at
	// random from the dictionary. When shorter than Games it repeats.
	Targets []string

	// PoolFromCandidates forwards the pool-capping knob to sessions.
	PoolFromCandidates bool
}

// Report aggregates a run's outcomes.
type Report struct {
	Games     int     `json:"games"`
	MaxTurns  int     `json:"maxTurns"`
	Histogram []int   `json:"histogram"` // index i = games solved on turn i+1
	Unsolved  int     `json:"unsolved"`
	WinRate   float64 `json:"winRate"`
	AvgTurns  float64 `json:"avgTurns"` // over solved games only
}

// Run plays cfg.Games independent sessions and reduces the outcomes.
func Run(ctx context.Context, dict *words.Dictionary, openers []string, cfg Config) (Report, error) {
	if cfg.Games <= 0 {
		return Report{}, errors.New("sim: games must be positive")
	}
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = session.DefaultMaxTurns
	}

	// Pinned targets arrive from flags; normalize to the dictionary's
	// lowercase form before validation and play.
	pinned := make([]string, len(cfg.Targets))
	for i, tgt := range cfg.Targets {
		pinned[i] = strings.ToLower(strings.TrimSpace(tgt))
		if !dict.Contains(pinned[i]) {
			return Report{}, fmt.Errorf("sim: target %q not in dictionary", tgt)
		}
	}

	// Draw all randomness up front from the master seed.
	master := rand.New(rand.NewSource(cfg.Seed))
	targets := make([]string, cfg.Games)
	seeds := make([]int64, cfg.Games)
	for i := range targets {
		if len(pinned) > 0 {
			targets[i] = pinned[i%len(pinned)]
		} else {
			targets[i] = dict.Random(master)
		}
		seeds[i] = master.Int63()
	}

	// turns[i] is the winning turn of game i, or 0 when unsolved.
	turns := make([]int, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			solvedTurn, err := playOne(dict, openers, targets[i], seeds[i], maxTurns, cfg)
			if err != nil {
				return fmt.Errorf("game %d (target %q): %w", i+1, targets[i], err)
			}
			turns[i] = solvedTurn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := Report{Games: cfg.Games, MaxTurns: maxTurns, Histogram: make([]int, maxTurns)}
	sum := 0
	for _, tn := range turns {
		if tn == 0 {
			rep.Unsolved++
			continue
		}
		rep.Histogram[tn-1]++
		sum += tn
	}
	solved := cfg.Games - rep.Unsolved
	rep.WinRate = float64(solved) / float64(cfg.Games)
	if solved > 0 {
		rep.AvgTurns = float64(sum) / float64(solved)
	}
	return rep, nil
}

// playOne runs a single automated session against a known target,
// returning the winning turn number or 0 when the cap is reached.
func playOne(dict *words.Dictionary, openers []string, target string, seed int64, maxTurns int, cfg Config) (int, error) {
	s := session.New(dict, session.Options{
		MaxTurns:           maxTurns,
		HardMode:           cfg.HardMode,
		Openers:            openers,
		Rand:               rand.New(rand.NewSource(seed)),
		PoolFromCandidates: cfg.PoolFromCandidates,
	})
	for s.Status() == session.InProgress {
		guess, err := s.NextGuess()
		if err != nil {
			return 0, err
		}
		status, err := s.Apply(guess, feedback.Evaluate(guess, target))
		if err != nil {
			// Honest oracle feedback can never contradict the candidate
			// set; surface it instead of counting a loss.
			return 0, err
		}
		if status == session.Solved {
			return len(s.Turns()), nil
		}
	}
	return 0, nil
}
