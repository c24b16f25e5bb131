package engine

// KeyboardModel tracks which keys are currently pressed and the most
// recently produced printable character, adjusted for Shift per the US
// layout. It never allocates per keystroke beyond the pressing set itself.
type KeyboardModel struct {
	pressing      map[KeyCode]struct{}
	lastPrintable rune
	hasPrintable  bool
}

// NewKeyboardModel returns an empty KeyboardModel.
func NewKeyboardModel() *KeyboardModel {
	return &KeyboardModel{pressing: make(map[KeyCode]struct{})}
}

// OnEvent folds a KeyEvent into the pressing set and last-printable cache.
func (k *KeyboardModel) OnEvent(e KeyEvent) {
	switch e.Kind {
	case KeyDown:
		k.pressing[e.Code] = struct{}{}
		if c, ok := e.Code.Printable(); ok {
			if k.IsPressingShift() {
				c = shiftProject(c)
			}
			k.lastPrintable = c
			k.hasPrintable = true
		}
	case KeyUp:
		delete(k.pressing, e.Code)
	case KeyRepeat:
		// correctness does not depend on repeat events.
	}
}

// Pressing returns the live pressing set (read-only by convention).
func (k *KeyboardModel) Pressing() map[KeyCode]struct{} { return k.pressing }

// setPressingModifiers drops every currently-held key, meta and printable
// alike, and replaces the pressing set with codes. Callers that never send
// KeyUp would otherwise leave earlier printable keys held indefinitely.
func (k *KeyboardModel) setPressingModifiers(codes []KeyCode) {
	for code := range k.pressing {
		delete(k.pressing, code)
	}
	for _, code := range codes {
		k.pressing[code] = struct{}{}
	}
}

// IsPressingShift reports whether Shift is currently held.
func (k *KeyboardModel) IsPressingShift() bool { return k.isPressingMeta(MetaShift) }

// IsPressingCtrl reports whether Ctrl is currently held.
func (k *KeyboardModel) IsPressingCtrl() bool { return k.isPressingMeta(MetaCtrl) }

// IsPressingAlt reports whether Alt is currently held.
func (k *KeyboardModel) IsPressingAlt() bool { return k.isPressingMeta(MetaAlt) }

// IsPressingSuper reports whether Super is currently held.
func (k *KeyboardModel) IsPressingSuper() bool { return k.isPressingMeta(MetaSuper) }

func (k *KeyboardModel) isPressingMeta(m MetaKey) bool {
	for code := range k.pressing {
		if code.IsMeta(m) {
			return true
		}
	}
	return false
}

// IsCombination reports whether a chording modifier (Ctrl/Alt/Super, not
// Shift alone) is held — Shift-only is how uppercase letters are typed.
func (k *KeyboardModel) IsCombination() bool {
	return k.IsPressingCtrl() || k.IsPressingAlt() || k.IsPressingSuper()
}

// LastCharacter returns the last printable character regardless of any
// combination currently held.
func (k *KeyboardModel) LastCharacter() (rune, bool) {
	return k.lastPrintable, k.hasPrintable
}

// LastPrintableKey returns the last printable character, but only when no
// chording combination is in effect.
func (k *KeyboardModel) LastPrintableKey() (rune, bool) {
	if k.IsCombination() {
		return 0, false
	}
	return k.LastCharacter()
}
