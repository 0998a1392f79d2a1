// internal/firstmove/cache.go
//
// Persisted cache of precomputed opening guesses.
//
// The first move is the most expensive scoring call in the system: the
// full dictionary is both guess pool and candidate set. The result only
// depends on the dictionary content, so the ranked top-K openers are
// computed once and persisted as a plain text artifact, one word per
// line, best to worst.
//
// The artifact file name embeds the dictionary's content identity, so a
// changed word set simply never matches its stale artifact again.
// Writes go through a temp file and an atomic rename; a crash mid-write
// can never leave a corrupt artifact visible to readers.

package firstmove

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordlebot/internal/solver"
	"github.com/robalobadob/wordlebot/internal/words"
)

// DefaultK is how many openers the artifact keeps.
const DefaultK = 100

// ErrCacheInvalid reports a missing or stale artifact. Recovered
// transparently by regenerating.
var ErrCacheInvalid = errors.New("firstmove: cache artifact missing or stale")

// Cache locates and manages first-move artifacts under Dir.
type Cache struct {
	Dir      string
	K        int  // 0 means DefaultK
	Workers  int  // 0 means one per CPU
	Progress bool // render a progress bar during generation
}

// Path returns the artifact location for a dictionary.
func (c *Cache) Path(d *words.Dictionary) string {
	return filepath.Join(c.Dir, fmt.Sprintf("first-moves-%s.txt", d.ID()))
}

func (c *Cache) k() int {
	if c.K > 0 {
		return c.K
	}
	return DefaultK
}

// Load reads the artifact for d. Returns ErrCacheInvalid when the file
// is absent, empty, or lists a word no longer in the dictionary.
func (c *Cache) Load(d *words.Dictionary) ([]string, error) {
	f, err := os.Open(c.Path(d))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheInvalid, c.Path(d))
	}
	defer f.Close()

	var openers []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		if !d.Contains(w) {
			return nil, fmt.Errorf("%w: %q not in dictionary", ErrCacheInvalid, w)
		}
		openers = append(openers, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("firstmove: read %s: %w", c.Path(d), err)
	}
	if len(openers) == 0 {
		return nil, fmt.Errorf("%w: empty artifact", ErrCacheInvalid)
	}
	return openers, nil
}

// Generate ranks the full dictionary against itself, persists the top K
// atomically, and returns them.
func (c *Cache) Generate(ctx context.Context, d *words.Dictionary) ([]string, error) {
	pool := d.Words()
	log.Info().Int("words", len(pool)).Str("dict", d.ID()).Msg("generating first-move cache")

	var progress func()
	if c.Progress {
		bar := progressbar.Default(int64(len(pool)), "scoring openers")
		progress = func() { _ = bar.Add(1) }
	}

	ranked, err := solver.RankAll(ctx, pool, pool, c.Workers, progress)
	if err != nil {
		return nil, err
	}
	k := c.k()
	if k > len(ranked) {
		k = len(ranked)
	}
	openers := make([]string, k)
	for i := 0; i < k; i++ {
		openers[i] = ranked[i].Word
	}
	if err := c.save(d, openers); err != nil {
		return nil, err
	}
	return openers, nil
}

// LoadOrGenerate serves from the artifact when valid and rebuilds it
// otherwise.
func (c *Cache) LoadOrGenerate(ctx context.Context, d *words.Dictionary) ([]string, error) {
	openers, err := c.Load(d)
	if err == nil {
		return openers, nil
	}
	if !errors.Is(err, ErrCacheInvalid) {
		return nil, err
	}
	log.Debug().Err(err).Msg("regenerating first-move cache")
	return c.Generate(ctx, d)
}

// save writes the artifact via temp file + rename so readers never see
// a partial write.
func (c *Cache) save(d *words.Dictionary, openers []string) error {
	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return fmt.Errorf("firstmove: mkdir %s: %w", c.Dir, err)
		}
	}
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "first-moves-*.tmp")
	if err != nil {
		return fmt.Errorf("firstmove: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, opener := range openers {
		if _, err := fmt.Fprintln(w, opener); err != nil {
			tmp.Close()
			return fmt.Errorf("firstmove: write: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("firstmove: flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("firstmove: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.Path(d)); err != nil {
		return fmt.Errorf("firstmove: rename: %w", err)
	}
	return nil
}

// Pick selects one opener uniformly at random, varying the opening
// move across games instead of always playing the single top word.
func Pick(openers []string, rng *rand.Rand) string {
	return openers[rng.Intn(len(openers))]
}
