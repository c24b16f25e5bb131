package engine

// Abbr types a literal ASCII buffer (entered via "/") and, on space, looks
// it up directly as the dictionary key — bypassing kana conversion
// entirely (§4.11).
type Abbr struct {
	ctx   Context
	child Transformer
}

// NewAbbr starts an empty Abbr backed by a Direct-letter Continuous child.
func NewAbbr(ctx Context) *Abbr {
	return &Abbr{ctx: ctx, child: NewContinuous(LetterDirect, ctx)}
}

func (a *Abbr) Type() TransformerType { return TAbbr }
func (a *Abbr) Context() Context      { return a.ctx }

func (a *Abbr) WithContext(ctx Context) Transformer {
	return &Abbr{ctx: ctx, child: a.child.WithContext(ctx)}
}

func (a *Abbr) DisplayString() string { return "▽" + a.child.DisplayString() }
func (a *Abbr) BufferContent() string { return a.child.BufferContent() }
func (a *Abbr) IsEmpty() bool         { return a.child.IsEmpty() }

func (a *Abbr) dispatch(res TransformResult) TransformResult {
	if res == nil {
		return nil
	}
	if len(res) == 0 {
		return some()
	}
	last := res[len(res)-1]
	next := &Abbr{ctx: last.Context(), child: last}
	return some(next)
}

func (a *Abbr) PushCharacter(c rune) TransformResult {
	return a.dispatch(a.child.PushCharacter(c))
}
func (a *Abbr) PushDelete() TransformResult {
	return a.dispatch(a.child.PushDelete())
}
func (a *Abbr) PushAnyCharacter(k KeyCode) TransformResult {
	return a.dispatch(a.child.PushAnyCharacter(k))
}

// PushSpace ends the literal-entry stage and looks the accumulated buffer
// up as a dictionary key, same as Yomi's try_composition but keyed on the
// literal text rather than a hiragana reading.
func (a *Abbr) PushSpace() TransformResult {
	buffer := a.child.BufferContent()
	if buffer == "" {
		return nil
	}
	word := NewAbbrWord(buffer)
	if entry, ok := a.ctx.Dictionary.Transform(word.DicRead()); ok {
		return some(NewSelectCandidate(a.ctx, entry, word))
	}
	return some(NewUnknownWord(a.ctx, word))
}

func (a *Abbr) PushEnter() TransformResult {
	return some(toCompletedWithBuffer(a.ctx, a.child.BufferContent()))
}

func (a *Abbr) PushBackspace() TransformResult {
	if a.child.IsEmpty() {
		return some()
	}
	return a.dispatch(a.child.PushBackspace())
}

func (a *Abbr) PushEscape() TransformResult { return some() }
