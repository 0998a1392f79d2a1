package feedback

import (
	"errors"
	"testing"
)

func TestEvaluateBasic(t *testing.T) {
	cases := []struct {
		guess, target, want string
	}{
		{"crane", "crane", "+++++"},
		{"crane", "caner", "+****"},
		{"slate", "crane", "--+-+"},
		{"stela", "knoll", "---+-"},
		{"knoll", "knoll", "+++++"},
		{"aaaaa", "about", "+----"},
	}
	for _, c := range cases {
		got := Evaluate(c.guess, c.target).String()
		if got != c.want {
			t.Errorf("Evaluate(%q, %q) = %q, want %q", c.guess, c.target, got, c.want)
		}
	}
}

// A repeated guess letter must not earn more marks than the target has
// occurrences of it.
func TestEvaluateDuplicateLetters(t *testing.T) {
	cases := []struct {
		guess, target, want string
	}{
		// Three l's in guess, one consumed by the hit at index 2: the
		// other two get no present marks.
		{"lolly", "melon", "-*+--"},
		// Hit consumes the budget before pass 2.
		{"allee", "llama", "*+*--"},
		{"eeeee", "embed", "+--+-"},
	}
	for _, c := range cases {
		got := Evaluate(c.guess, c.target).String()
		if got != c.want {
			t.Errorf("Evaluate(%q, %q) = %q, want %q", c.guess, c.target, got, c.want)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	a := Evaluate("crate", "trace")
	b := Evaluate("crate", "trace")
	if a != b {
		t.Fatalf("repeated calls disagree: %v vs %v", a, b)
	}
}

func TestAllHitIffEqual(t *testing.T) {
	words := []string{"knoll", "stela", "doily", "hullo"}
	for _, g := range words {
		for _, w := range words {
			gotAllHit := Evaluate(g, w).AllHit()
			if gotAllHit != (g == w) {
				t.Errorf("Evaluate(%q, %q).AllHit() = %v", g, w, gotAllHit)
			}
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"+++++", "-----", "+*-*+", "***--"} {
		p, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if p.String() != s {
			t.Errorf("Parse(%q).String() = %q", s, p.String())
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "++++", "++++++", "+*-*x", "abcde", "+ +++"} {
		if _, err := Parse(s); !errors.Is(err, ErrBadPattern) {
			t.Errorf("Parse(%q) err = %v, want ErrBadPattern", s, err)
		}
	}
}

func TestSolved(t *testing.T) {
	if !Solved().AllHit() {
		t.Fatal("Solved() is not all-hit")
	}
	if Solved().String() != "+++++" {
		t.Fatalf("Solved() = %q", Solved().String())
	}
}
