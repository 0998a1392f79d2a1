package main

import (
	"context"
	"os"

	"github.com/robalobadob/wordlebot/internal/firstmove"
	"github.com/robalobadob/wordlebot/internal/words"
)

// loadDictionary resolves flags/env into a Dictionary. Precedence:
// --dict flag, WORDLEBOT_DICT, built-in list.
func loadDictionary() (*words.Dictionary, error) {
	alphabet, err := words.ParseAlphabet(flagAlphabet)
	if err != nil {
		return nil, err
	}
	path := flagDict
	if path == "" {
		path = os.Getenv("WORDLEBOT_DICT")
	}
	if path == "" {
		return words.Default()
	}
	return words.Load(path, alphabet)
}

// openerCache builds the cache handle from flags/env.
func openerCache(progress bool) *firstmove.Cache {
	dir := flagCacheDir
	if dir == "" {
		dir = getEnv("WORDLEBOT_CACHE_DIR", ".")
	}
	return &firstmove.Cache{Dir: dir, Progress: progress}
}

// loadOpeners fetches (or builds) the first-move list for dict.
func loadOpeners(ctx context.Context, dict *words.Dictionary, progress bool) ([]string, error) {
	return openerCache(progress).LoadOrGenerate(ctx, dict)
}
