// internal/words/words.go
//
// Dictionary management for the solving agent.
//
// Responsibilities:
//   - Load a word list from a file or fall back to the embedded default.
//   - Normalize (lowercase, trim), validate length and alphabet, dedupe.
//   - Expose the list sorted for deterministic iteration, plus set
//     lookups and seeded random draws.
//   - Derive a stable content identity (ID) used to key the first-move
//     cache artifact: any change to the word set changes the ID.
//
// A Dictionary is an explicit value handed to callers; there is no
// package-level word list state.

package words

import (
	"bufio"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
)

// Length is the fixed word length for this game.
const Length = 5

//go:embed default_words.txt
var embeddedWords string

// ErrNoWords reports a dictionary with no usable words of the
// configured length and alphabet. Fatal at startup.
var ErrNoWords = errors.New("words: dictionary contains no valid words")

// Alphabet selects which symbol set words are drawn from.
type Alphabet int

const (
	Letters Alphabet = iota // a-z
	Digits                  // 0-9
)

// ParseAlphabet maps a flag value to an Alphabet.
func ParseAlphabet(s string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "letters":
		return Letters, nil
	case "digits":
		return Digits, nil
	}
	return Letters, fmt.Errorf("words: unknown alphabet %q (want letters or digits)", s)
}

// Valid reports whether s consists only of symbols from the alphabet.
func (a Alphabet) Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch a {
		case Digits:
			if c < '0' || c > '9' {
				return false
			}
		default:
			if c < 'a' || c > 'z' {
				return false
			}
		}
	}
	return true
}

func (a Alphabet) String() string {
	if a == Digits {
		return "digits"
	}
	return "letters"
}

// Dictionary is an immutable, deduplicated, sorted word list.
type Dictionary struct {
	words    []string
	set      map[string]struct{}
	alphabet Alphabet
	id       string
}

// New builds a Dictionary from raw entries. Entries are lowercased and
// trimmed; anything of the wrong length or outside the alphabet is
// skipped (boundary-recoverable input errors). Duplicates collapse.
func New(entries []string, alphabet Alphabet) (*Dictionary, error) {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		w := strings.TrimSpace(strings.ToLower(e))
		if len(w) == Length && alphabet.Valid(w) {
			set[w] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil, ErrNoWords
	}
	list := make([]string, 0, len(set))
	for w := range set {
		list = append(list, w)
	}
	sort.Strings(list)

	// Content identity: hash of the sorted word set. Dictionaries with
	// the same words always agree, regardless of input order or case.
	h := sha256.New()
	for _, w := range list {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return &Dictionary{
		words:    list,
		set:      set,
		alphabet: alphabet,
		id:       hex.EncodeToString(h.Sum(nil))[:16],
	}, nil
}

// Load reads a newline-delimited word list from path.
func Load(path string, alphabet Alphabet) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	d, err := New(lines, alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return d, nil
}

// Default returns the embedded fallback dictionary, so the agent runs
// without any configuration.
func Default() (*Dictionary, error) {
	return New(strings.Split(embeddedWords, "\n"), Letters)
}

// Words returns the sorted word list. Callers must not mutate it.
func (d *Dictionary) Words() []string { return d.words }

// Len reports the number of words.
func (d *Dictionary) Len() int { return len(d.words) }

// Contains reports whether w (case-insensitive) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Alphabet returns the symbol set this dictionary was validated against.
func (d *Dictionary) Alphabet() Alphabet { return d.alphabet }

// ID is the dictionary's content identity.
func (d *Dictionary) ID() string { return d.id }

// Random draws a word using the supplied source, so callers control
// reproducibility.
func (d *Dictionary) Random(rng *rand.Rand) string {
	return d.words[rng.Intn(len(d.words))]
}
