package main

import "github.com/username/rskk-ime/internal/engine"

// X11 keysym/modifier constants the D-Bus frontend sends us, carried over
// from the teacher's key-translation layer.
const (
	modShift   uint32 = 1 << 0
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3 // Alt
	modMod4    uint32 = 1 << 6 // Super

	keyBackspace uint32 = 0xff08
	keyTab       uint32 = 0xff09
	keyReturn    uint32 = 0xff0d
	keyEscape    uint32 = 0xff1b
	keySpace     uint32 = 0x0020
	keyDelete    uint32 = 0xffff
	keyArrowLeft uint32 = 0xff51
	keyArrowUp   uint32 = 0xff52
	keyArrowRight uint32 = 0xff53
	keyArrowDown uint32 = 0xff54
)

// keysymToKeyCode translates one X11 keysym+modifier pair into the
// engine's KeyCode union. Meta keys with no printable projection become
// MetaOnly; a plain letter/digit/symbol becomes Printable, shifted per the
// modifier state the frontend reports.
func keysymToKeyCode(keysym, modifiers uint32) engine.KeyCode {
	if m, ok := metaFor(keysym); ok {
		return engine.MetaOnly(m)
	}

	if keysym < 0x20 || keysym > 0x10ffff {
		return engine.NullKey
	}
	c := rune(keysym)
	if modifiers&modShift != 0 {
		c = shiftKeysym(c)
	}
	return engine.Printable(c)
}

func metaFor(keysym uint32) (engine.MetaKey, bool) {
	switch keysym {
	case keyBackspace:
		return engine.MetaBackspace, true
	case keyTab:
		return engine.MetaTab, true
	case keyReturn:
		return engine.MetaEnter, true
	case keyEscape:
		return engine.MetaEscape, true
	case keySpace:
		return engine.MetaSpace, true
	case keyDelete:
		return engine.MetaDelete, true
	case keyArrowLeft:
		return engine.MetaArrowLeft, true
	case keyArrowUp:
		return engine.MetaArrowUp, true
	case keyArrowRight:
		return engine.MetaArrowRight, true
	case keyArrowDown:
		return engine.MetaArrowDown, true
	default:
		return 0, false
	}
}

// pressingModifierCodes expands a modifier bitmask into the MetaOnly
// KeyCodes the engine's KeyboardModel tracks as held.
func pressingModifierCodes(modifiers uint32) []engine.KeyCode {
	var out []engine.KeyCode
	if modifiers&modShift != 0 {
		out = append(out, engine.MetaOnly(engine.MetaShift))
	}
	if modifiers&modControl != 0 {
		out = append(out, engine.MetaOnly(engine.MetaCtrl))
	}
	if modifiers&modMod1 != 0 {
		out = append(out, engine.MetaOnly(engine.MetaAlt))
	}
	if modifiers&modMod4 != 0 {
		out = append(out, engine.MetaOnly(engine.MetaSuper))
	}
	return out
}

func shiftKeysym(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
