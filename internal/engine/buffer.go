package engine

import "strings"

// BufferState marks whether a BufferPair is finalized (Stop) or still
// pending further input (Continue).
type BufferState int

const (
	StateContinue BufferState = iota
	StateStop
)

// LetterType selects which kana table a BufferPairs converts through.
type LetterType int

const (
	LetterHiragana LetterType = iota
	LetterKatakana
	LetterDirect
)

// BufferPair is the atomic product of one kana-table step.
type BufferPair struct {
	LetterType LetterType
	Buffer     string
	State      BufferState
}

// kanaConvertFunc converts one further input character against the
// currently-pending raw buffer, returning the sequence of BufferPair to
// append in its place. ok is false when no rule matches; per §4.5 the
// caller then drops the pending buffer and leaves the input unconsumed.
type kanaConvertFunc func(pending string, input rune) ([]BufferPair, bool)

func converterFor(lt LetterType) kanaConvertFunc {
	switch lt {
	case LetterKatakana:
		return convertKatakana
	case LetterDirect:
		return convertDirect
	default:
		return convertHiragana
	}
}

// BufferPairs is an ordered sequence of BufferPair for one letter type,
// with a push that consumes one input character at a time, respecting the
// rule that a new pair starts once the trailing pair is Stop.
type BufferPairs struct {
	LetterType LetterType
	Pairs      []BufferPair
	convert    kanaConvertFunc
}

// NewBufferPairs returns an empty BufferPairs for lt.
func NewBufferPairs(lt LetterType) *BufferPairs {
	return &BufferPairs{LetterType: lt, convert: converterFor(lt)}
}

// Clone returns an independent copy (transformers are logically immutable;
// every transformer operation works on a clone).
func (b *BufferPairs) Clone() *BufferPairs {
	cp := &BufferPairs{LetterType: b.LetterType, convert: b.convert}
	cp.Pairs = append([]BufferPair(nil), b.Pairs...)
	return cp
}

func (b *BufferPairs) pendingBuffer() string {
	if len(b.Pairs) == 0 {
		return ""
	}
	last := b.Pairs[len(b.Pairs)-1]
	if last.State == StateContinue {
		return last.Buffer
	}
	return ""
}

// Push consumes c. It returns false when no table rule matched the
// resulting (pending, input) pair. Per §4.1, a non-match always drops the
// dangling pending fragment (c itself stays unconsumed) — the pending
// pair is popped whether or not the table finds a rule, matching the
// pop-then-maybe-reinsert shape of the original table implementation.
func (b *BufferPairs) Push(c rune) bool {
	pending := b.pendingBuffer()
	emitted, ok := b.convert(pending, c)
	if pending != "" {
		b.Pairs = b.Pairs[:len(b.Pairs)-1]
	}
	if !ok {
		return false
	}
	b.Pairs = append(b.Pairs, emitted...)
	return true
}

// IsEmpty reports whether no pairs have been accumulated.
func (b *BufferPairs) IsEmpty() bool { return len(b.Pairs) == 0 }

// AllStop reports whether the trailing pair (if any) is finalized — i.e.
// there is no dangling pending romaji fragment.
func (b *BufferPairs) AllStop() bool {
	if len(b.Pairs) == 0 {
		return true
	}
	return b.Pairs[len(b.Pairs)-1].State == StateStop
}

// String renders the concatenated buffer content, pending fragment
// included verbatim.
func (b *BufferPairs) String() string {
	var sb strings.Builder
	for _, p := range b.Pairs {
		sb.WriteString(p.Buffer)
	}
	return sb.String()
}

// PopChar removes the trailing character of the last pair, dropping the
// pair entirely once its buffer empties. Returns false if there was
// nothing to remove.
func (b *BufferPairs) PopChar() bool {
	if len(b.Pairs) == 0 {
		return false
	}
	last := &b.Pairs[len(b.Pairs)-1]
	runes := []rune(last.Buffer)
	if len(runes) <= 1 {
		b.Pairs = b.Pairs[:len(b.Pairs)-1]
		return true
	}
	last.Buffer = string(runes[:len(runes)-1])
	return true
}

// geminateConsonants is the set of consonants that double into a small-tsu
// (っ) when repeated, per §4.1.
var geminateConsonants = map[rune]bool{
	'w': true, 'r': true, 't': true, 'y': true, 'p': true, 's': true,
	'd': true, 'g': true, 'h': true, 'j': true, 'k': true, 'l': true,
	'z': true, 'x': true, 'c': true, 'v': true, 'b': true, 'm': true,
}
