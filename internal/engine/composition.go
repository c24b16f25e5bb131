package engine

// Composition is the façade the daemon drives: one KeyboardModel plus the
// single active Transformer, draining committed text and dictionary
// learning events out of each key event (§4.13).
type Composition struct {
	ctx      Context
	keyboard *KeyboardModel
	active   Transformer
	base     Transformer
	sticky   bool
}

// StartComposition constructs the engine's base transformer from
// defaultType, per spec §6's host interface: "construct engine with
// (default_transformer_type, Config, Dictionary)".
func StartComposition(ctx Context, defaultType TransformerType) *Composition {
	base := buildBaseTransformer(defaultType, ctx)
	return &Composition{ctx: ctx, keyboard: NewKeyboardModel(), active: base, base: base}
}

// buildBaseTransformer constructs the persistent top-level transformer
// named by t. Any type outside the base set (THiragana/TKatakana/
// TEnKatakana/TEmEisu/TDirect) falls back to Direct.
func buildBaseTransformer(t TransformerType, ctx Context) Transformer {
	switch t {
	case THiragana:
		return NewLetterTransformer(LetterHiragana, ctx)
	case TKatakana:
		return NewLetterTransformer(LetterKatakana, ctx)
	case TEnKatakana:
		return NewEnKatakana(ctx)
	case TEmEisu:
		return NewEmEisu(ctx)
	default:
		return NewDirect(ctx)
	}
}

// DisplayString renders the in-progress composition, for on-screen preedit.
func (c *Composition) DisplayString() string { return c.active.DisplayString() }

// SetPressingModifiers replaces the KeyboardModel's whole pressing set
// with codes, without dispatching into the transformer chain. D-Bus
// frontends report the full modifier mask with every keystroke rather than
// discrete press/release events, so the daemon resyncs state this way
// before each PushKeyEvent call; keys from earlier keystrokes are dropped.
func (c *Composition) SetPressingModifiers(codes []KeyCode) {
	c.keyboard.setPressingModifiers(codes)
}

// isBaseMode reports whether t is one of the persistent top-level input
// modes (as opposed to a transient Henkan/Abbr sub-composition), i.e. the
// mode a commit should fall back to.
func isBaseMode(t Transformer) bool {
	switch t.(type) {
	case *Direct, *LetterTransformer, *stubTransformer:
		return true
	default:
		return false
	}
}

// freshSibling rebuilds an empty transformer of the same persistent mode
// as base, so committing text never silently drops the user back to
// Direct from Hiragana/Katakana.
func freshSibling(base Transformer, ctx Context) Transformer {
	switch v := base.(type) {
	case *LetterTransformer:
		return NewLetterTransformer(v.letterType, ctx)
	case *stubTransformer:
		return &stubTransformer{ctx: ctx, typ: v.typ}
	default:
		return NewDirect(ctx)
	}
}

func (c *Composition) setActive(t Transformer) {
	c.active = t
	if isBaseMode(t) {
		c.base = t
	}
}

// drain folds a TransformResult back into Composition state, returning any
// text committed and dictionary entries learned along the way.
func (c *Composition) drain(res TransformResult) (string, []DictionaryEntry) {
	if res == nil {
		return "", nil
	}
	if len(res) == 0 {
		c.setActive(freshSibling(c.base, c.ctx))
		return "", nil
	}
	last := res[len(res)-1]
	if stopped, ok := asStopped(last); ok {
		var committed string
		if stopped.IsCompleated() {
			committed = stopped.ctx.Result.StoppedBuffer
		}
		updates := stopped.ctx.Result.DictionaryUpdates
		for _, u := range updates {
			c.ctx.Dictionary.Put(u)
		}
		c.setActive(freshSibling(c.base, stopped.ctx))
		return committed, updates
	}
	c.setActive(last)
	return "", nil
}

// PushKeyEvent feeds one physical key event through the active transformer,
// returning committed text (if any) and freshly-learned dictionary entries.
// KeyUp/KeyRepeat only update the KeyboardModel (for modifier tracking);
// only KeyDown dispatches into the transformer chain.
func (c *Composition) PushKeyEvent(e KeyEvent) (string, []DictionaryEntry) {
	c.keyboard.OnEvent(e)
	if e.Kind != KeyDown {
		return "", nil
	}

	pressing := c.keyboard.Pressing()

	if ms, ok := c.active.(modeSwitcher); ok {
		if next, ok := ms.TryChangeTransformer(pressing); ok {
			c.setActive(next)
			return "", nil
		}
	}

	if _, ok := c.ctx.Config.TryChangeTransformer([]Action{ActionSticky}, pressing); ok {
		c.sticky = !c.sticky
		return "", nil
	}

	switch {
	case e.Code.IsMeta(MetaEnter):
		return c.drain(c.active.PushEnter())
	case e.Code.IsMeta(MetaSpace):
		return c.drain(c.active.PushSpace())
	case e.Code.IsMeta(MetaBackspace):
		return c.drain(c.active.PushBackspace())
	case e.Code.IsMeta(MetaDelete):
		return c.drain(c.active.PushDelete())
	case e.Code.IsMeta(MetaEscape):
		return c.drain(c.active.PushEscape())
	}

	if ch, ok := e.Code.Printable(); ok {
		if c.sticky {
			ch = shiftProject(ch)
			c.sticky = false
		}
		// §4.9's candidate-commit-and-redeliver path: a printable character
		// arriving while a candidate is on display commits it first, then
		// is redelivered to the freshly-installed transformer rather than
		// being swallowed.
		if cc, ok := c.active.(selectCandidateCommitter); ok {
			if res, handled := cc.CommitAndRedeliver(ch); handled {
				committed1, updates1 := c.drain(res)
				committed2, updates2 := c.drain(c.active.PushCharacter(ch))
				return committed1 + committed2, append(updates1, updates2...)
			}
		}
		return c.drain(c.active.PushCharacter(ch))
	}

	return c.drain(c.active.PushAnyCharacter(e.Code))
}
