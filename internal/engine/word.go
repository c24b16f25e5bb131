package engine

import "unicode"

// Word is the composite editable reading held by Yomi/SelectCandidate/
// UnknownWord: a primary yomi buffer, an optional okuri buffer, and the
// lowercase romaji consonant that launched okuri (§3).
type Word struct {
	Yomi           *BufferPairs
	Okuri          *BufferPairs
	OkuriStartChar rune
	HasOkuriStart  bool
	IsAbbr         bool
}

// NewWord starts an empty Word of the given letter type.
func NewWord(lt LetterType) *Word {
	return &Word{Yomi: NewBufferPairs(lt)}
}

// NewAbbrWord builds the literal Word used by AbbrTransformer once its
// accumulated ASCII buffer enters composition (§4.11's new_abbr).
func NewAbbrWord(literal string) *Word {
	return &Word{
		Yomi: &BufferPairs{
			LetterType: LetterDirect,
			Pairs:      []BufferPair{{LetterType: LetterDirect, Buffer: literal, State: StateStop}},
			convert:    convertDirect,
		},
		IsAbbr: true,
	}
}

// Clone returns an independent copy.
func (w *Word) Clone() *Word {
	cp := &Word{
		OkuriStartChar: w.OkuriStartChar,
		HasOkuriStart:  w.HasOkuriStart,
		IsAbbr:         w.IsAbbr,
		Yomi:           w.Yomi.Clone(),
	}
	if w.Okuri != nil {
		cp.Okuri = w.Okuri.Clone()
	}
	return cp
}

// IsEmpty reports whether both yomi and okuri (if any) are empty.
func (w *Word) IsEmpty() bool {
	return w.Yomi.IsEmpty() && (w.Okuri == nil || w.Okuri.IsEmpty())
}

// Push appends c, detecting okuri start: an uppercase letter arriving
// right after yomi's trailing pair has finalized, with no okuri yet
// underway, starts okuri and records its lowercase consonant.
func (w *Word) Push(c rune) bool {
	if w.IsAbbr {
		return w.Yomi.Push(c)
	}
	lower := unicode.ToLower(c)
	isUpper := unicode.IsUpper(c)

	if w.Okuri == nil && isUpper && !w.Yomi.IsEmpty() && w.Yomi.AllStop() {
		w.Okuri = NewBufferPairs(w.Yomi.LetterType)
		w.OkuriStartChar = lower
		w.HasOkuriStart = true
		return w.Okuri.Push(lower)
	}
	if w.Okuri != nil {
		return w.Okuri.Push(lower)
	}
	return w.Yomi.Push(lower)
}

// PopChar removes the trailing character from okuri if present, else from
// yomi. Returns false if the Word was already empty.
func (w *Word) PopChar() bool {
	if w.Okuri != nil && !w.Okuri.IsEmpty() {
		ok := w.Okuri.PopChar()
		if w.Okuri.IsEmpty() {
			w.Okuri = nil
			w.HasOkuriStart = false
		}
		return ok
	}
	return w.Yomi.PopChar()
}

// OkuriCompleted reports whether an in-progress okuri has just finalized
// into kana (all pairs Stop and non-empty).
func (w *Word) OkuriCompleted() bool {
	return w.Okuri != nil && !w.Okuri.IsEmpty() && w.Okuri.AllStop()
}

// DropOkuri clears any in-progress okuri, restoring a bare Yomi state.
func (w *Word) DropOkuri() *Word {
	cp := w.Clone()
	cp.Okuri = nil
	cp.HasOkuriStart = false
	return cp
}

// DisplayString renders "yomi" or "yomi*okuri".
func (w *Word) DisplayString() string {
	if w.Okuri != nil {
		return w.Yomi.String() + "*" + w.Okuri.String()
	}
	return w.Yomi.String()
}

// BufferContent is the plain committed text: yomi with okuri stripped.
func (w *Word) BufferContent() string {
	return w.Yomi.String()
}

// hiraganaOf converts a katakana BufferPairs rendering to hiragana by
// shifting the katakana Unicode block down by 0x60; hiragana/direct pass
// through unchanged.
func hiraganaOf(b *BufferPairs) string {
	if b.LetterType != LetterKatakana {
		return b.String()
	}
	runes := []rune(b.String())
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// DicRead is the hiragana reading used for dictionary lookup during
// composition: yomi in hiragana, plus the okuri-start consonant if any.
func (w *Word) DicRead() string {
	if w.IsAbbr {
		return w.Yomi.String()
	}
	base := hiraganaOf(w.Yomi)
	if w.HasOkuriStart {
		return base + string(w.OkuriStartChar)
	}
	return base
}

// DicReadBase is DicRead without the trailing okuri-start consonant — the
// key used when registering a brand new UnknownWord entry (§4.10).
func (w *Word) DicReadBase() string {
	if w.IsAbbr {
		return w.Yomi.String()
	}
	return hiraganaOf(w.Yomi)
}
