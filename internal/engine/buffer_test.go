package engine

import "testing"

func TestBufferPairsHiraganaGeminate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tte", "tte", "って"},
		{"kka", "kka", "っか"},
		{"nn terminal", "nn", "ん"},
		{"n before consonant", "nka", "んか"},
		{"plain syllable", "ka", "か"},
		{"youon", "kya", "きゃ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferPairs(LetterHiragana)
			for _, r := range tt.input {
				if !b.Push(r) {
					t.Fatalf("Push(%q) rejected mid-input %q", r, tt.input)
				}
			}
			if !b.AllStop() {
				t.Fatalf("input %q left a pending buffer: %q", tt.input, b.String())
			}
			if got := b.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBufferPairsPendingGeminate(t *testing.T) {
	b := NewBufferPairs(LetterHiragana)
	b.Push('t')
	b.Push('t')
	if b.AllStop() {
		t.Fatalf("expected a pending Continue pair after \"tt\"")
	}
	if got := b.String(); got != "っt" {
		t.Fatalf("String() = %q, want %q", got, "っt")
	}
}

func TestBufferPairsKatakanaComposite(t *testing.T) {
	b := NewBufferPairs(LetterKatakana)
	for _, r := range "tsa" {
		if !b.Push(r) {
			t.Fatalf("Push(%q) rejected", r)
		}
	}
	if got := b.String(); got != "ツァ" {
		t.Fatalf("String() = %q, want %q", got, "ツァ")
	}
}

func TestBufferPairsPopChar(t *testing.T) {
	b := NewBufferPairs(LetterHiragana)
	b.Push('k')
	b.Push('a')
	b.Push('n')
	if !b.PopChar() {
		t.Fatalf("PopChar() failed on non-empty buffer")
	}
	if got := b.String(); got != "か" {
		t.Fatalf("after pop String() = %q, want %q", got, "か")
	}
}

func TestBufferPairsNoRuleMatched(t *testing.T) {
	b := NewBufferPairs(LetterHiragana)
	if b.Push('q') {
		// 'q' has no hiragana romaji mapping and is not a valid prefix.
		t.Fatalf("Push('q') unexpectedly accepted")
	}
}

func TestBufferPairsNoRuleMatchedMidBufferDropsPending(t *testing.T) {
	b := NewBufferPairs(LetterHiragana)
	if !b.Push('k') {
		t.Fatalf("Push('k') rejected")
	}
	if b.AllStop() {
		t.Fatalf("expected a pending fragment after \"k\"")
	}
	if b.Push('q') {
		t.Fatalf("Push('q') unexpectedly accepted against pending \"k\"")
	}
	if b.String() != "" {
		t.Fatalf("String() = %q after a non-match, want the dangling \"k\" fragment dropped", b.String())
	}
	if !b.Push('a') {
		t.Fatalf("Push('a') rejected after the dropped fragment")
	}
	if got := b.String(); got != "あ" {
		t.Fatalf("String() = %q, want %q — stale pending state leaked into the next syllable", got, "あ")
	}
}

func TestDirectPassthroughPreservesCase(t *testing.T) {
	w := NewAbbrWord("AbC")
	if got := w.Yomi.String(); got != "AbC" {
		t.Fatalf("abbr literal = %q, want %q", got, "AbC")
	}
}
