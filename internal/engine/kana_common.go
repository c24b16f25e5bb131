package engine

import "unicode"

// kanaTable bundles everything needed to run the shared romaji-accumulation
// algorithm for one kana script: the full syllable map, the precomputed set
// of valid pending prefixes, the small-tsu / moraic-n glyphs for this
// script, and any punctuation/arrow composites keyed by their pending "z"
// prefix (§4.1).
type kanaTable struct {
	syllables  map[string]string
	prefixes   map[string]bool
	geminate   string // small-tsu glyph: っ or ッ
	moraicN    string // moraic-n glyph: ん or ン
	zComposite map[rune]string
	composites map[string][2]string // e.g. "tsa" -> ["ツ", "ァ"] (katakana only)
}

func buildPrefixes(syllables map[string]string) map[string]bool {
	prefixes := make(map[string]bool)
	for key := range syllables {
		runes := []rune(key)
		for i := 1; i < len(runes); i++ {
			prefixes[string(runes[:i])] = true
		}
	}
	return prefixes
}

// convert runs the shared romaji-to-kana algorithm described in §4.1:
// terminal nn, z-composites, exact syllable match, geminate doubling,
// nasal-n-before-consonant (unless n plus the consonant is itself a
// syllable prefix, as in "nya"), prefix accumulation, else "no rule".
func (t *kanaTable) convert(lt LetterType, pending string, input rune) ([]BufferPair, bool) {
	input = unicode.ToLower(input)
	combined := pending + string(input)

	if pending == "n" && input == 'n' {
		return []BufferPair{{LetterType: lt, Buffer: t.moraicN, State: StateStop}}, true
	}

	if pending == "z" && t.zComposite != nil {
		if glyph, ok := t.zComposite[input]; ok {
			return []BufferPair{{LetterType: lt, Buffer: glyph, State: StateStop}}, true
		}
	}

	if pair, ok := t.composites[combined]; ok {
		return []BufferPair{
			{LetterType: lt, Buffer: pair[0], State: StateStop},
			{LetterType: lt, Buffer: pair[1], State: StateStop},
		}, true
	}

	if glyph, ok := t.syllables[combined]; ok {
		return []BufferPair{{LetterType: lt, Buffer: glyph, State: StateStop}}, true
	}

	if len(pending) == 1 && pending == string(input) && geminateConsonants[input] {
		return []BufferPair{
			{LetterType: lt, Buffer: t.geminate, State: StateStop},
			{LetterType: lt, Buffer: string(input), State: StateContinue},
		}, true
	}

	if pending == "n" && geminateConsonants[input] && !t.prefixes[combined] {
		return []BufferPair{
			{LetterType: lt, Buffer: t.moraicN, State: StateStop},
			{LetterType: lt, Buffer: string(input), State: StateContinue},
		}, true
	}

	if t.prefixes[combined] {
		return []BufferPair{{LetterType: lt, Buffer: combined, State: StateContinue}}, true
	}

	return nil, false
}
