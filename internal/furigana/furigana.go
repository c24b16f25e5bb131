// Package furigana suggests a hiragana reading for a kanji-bearing literal,
// backed by the kagome morphological tokenizer. It implements
// engine.ReadingSuggester so UnknownWord registration can propose a
// dic_read without the user having to type one by hand.
package furigana

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Suggester wraps a kagome tokenizer configured with the IPA dictionary.
type Suggester struct {
	tok *tokenizer.Tokenizer
}

// New builds a Suggester. Construction can fail if the embedded dictionary
// fails to load; callers should treat a non-nil error as "no furigana
// support available" rather than fatal.
func New() (*Suggester, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Suggester{tok: t}, nil
}

// SuggestReading tokenizes text and concatenates each token's reading,
// converted from katakana to hiragana. Returns ok=false if any token
// lacks a reading (kagome cannot pronounce it), since a partial reading
// would mislead dictionary registration more than no suggestion at all.
func (s *Suggester) SuggestReading(text string) (string, bool) {
	if s == nil || s.tok == nil || text == "" {
		return "", false
	}
	tokens := s.tok.Tokenize(text)
	var sb strings.Builder
	for _, t := range tokens {
		reading, ok := t.Reading()
		if !ok || reading == "" {
			return "", false
		}
		sb.WriteString(katakanaToHiragana(reading))
	}
	result := sb.String()
	if result == "" {
		return "", false
	}
	return result, true
}

// katakanaToHiragana shifts the katakana Unicode block down by 0x60,
// matching the conversion used throughout internal/engine for dic_read.
func katakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}
