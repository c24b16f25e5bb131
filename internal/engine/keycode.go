// Package engine implements the transformer state machine at the core of
// the input method: romaji keystrokes in, kana/kanji composition out.
package engine

import "unicode"

// MetaKey enumerates the non-printable keys the engine cares about.
type MetaKey int

const (
	MetaShift MetaKey = iota
	MetaCtrl
	MetaAlt
	MetaSuper
	MetaEnter
	MetaSpace
	MetaTab
	MetaEscape
	MetaDelete
	MetaBackspace
	MetaArrowUp
	MetaArrowDown
	MetaArrowLeft
	MetaArrowRight
)

// KeyCodeKind discriminates the four KeyCode variants.
type KeyCodeKind int

const (
	KeyCodeNull KeyCodeKind = iota
	KeyCodePrintable
	KeyCodeMeta
	KeyCodePrintableMeta
)

// KeyCode is a discriminated union: Printable(char), Meta(MetaKey),
// PrintableMeta(MetaKey, char), or Null. Comparable, usable as a map key.
type KeyCode struct {
	Kind KeyCodeKind
	Char rune
	Meta MetaKey
}

// Printable builds a plain printable KeyCode.
func Printable(c rune) KeyCode { return KeyCode{Kind: KeyCodePrintable, Char: c} }

// MetaOnly builds a non-printable meta KeyCode.
func MetaOnly(m MetaKey) KeyCode { return KeyCode{Kind: KeyCodeMeta, Meta: m} }

// PrintableMeta builds a KeyCode carrying both a meta semantic and a
// character projection (Enter/Space/Tab fall here).
func PrintableMeta(m MetaKey, c rune) KeyCode {
	return KeyCode{Kind: KeyCodePrintableMeta, Meta: m, Char: c}
}

// NullKey is the absence of a key.
var NullKey = KeyCode{Kind: KeyCodeNull}

// Printable projects this KeyCode to a character, if it carries one.
func (k KeyCode) Printable() (rune, bool) {
	switch k.Kind {
	case KeyCodePrintable, KeyCodePrintableMeta:
		return k.Char, true
	default:
		return 0, false
	}
}

// IsMeta reports whether this KeyCode carries the given meta semantic.
func (k KeyCode) IsMeta(m MetaKey) bool {
	return (k.Kind == KeyCodeMeta || k.Kind == KeyCodePrintableMeta) && k.Meta == m
}

// KeyEventKind discriminates KeyDown/KeyUp/KeyRepeat.
type KeyEventKind int

const (
	KeyDown KeyEventKind = iota
	KeyUp
	KeyRepeat
)

// KeyEvent is a single physical keyboard event.
type KeyEvent struct {
	Kind KeyEventKind
	Code KeyCode
}

// KeyCombination is an unordered set of KeyCodes that must all be held
// simultaneously to fulfil the combination.
type KeyCombination map[KeyCode]struct{}

// NewKeyCombination builds a KeyCombination from a list of codes.
func NewKeyCombination(codes ...KeyCode) KeyCombination {
	kc := make(KeyCombination, len(codes))
	for _, c := range codes {
		kc[c] = struct{}{}
	}
	return kc
}

// Fulfilled reports whether every code in kc is present in pressing.
func (kc KeyCombination) Fulfilled(pressing map[KeyCode]struct{}) bool {
	for code := range kc {
		if _, ok := pressing[code]; !ok {
			return false
		}
	}
	return true
}

// KeyCombinations is a set of alternative KeyCombination values; any one
// being fulfilled fulfils the whole set.
type KeyCombinations []KeyCombination

// Fulfilled reports whether any combination in ks is fulfilled.
func (ks KeyCombinations) Fulfilled(pressing map[KeyCode]struct{}) bool {
	for _, kc := range ks {
		if kc.Fulfilled(pressing) {
			return true
		}
	}
	return false
}

// usShiftSymbols is the US-layout shift projection for the non-letter row,
// used by KeyboardModel to derive last_printable under Shift.
var usShiftSymbols = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', ';': ':',
	'\'': '"', '`': '~', '\\': '|', ',': '<', '.': '>', '/': '?',
}

// shiftProject applies the US shift-layout mapping to a base character.
func shiftProject(c rune) rune {
	if unicode.IsLower(c) {
		return unicode.ToUpper(c)
	}
	if s, ok := usShiftSymbols[c]; ok {
		return s
	}
	return c
}
