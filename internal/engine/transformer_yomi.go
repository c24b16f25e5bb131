package engine

// Yomi holds the Word being composed (§4.8). Display is "▽" + the word's
// own yomi/okuri rendering.
type Yomi struct {
	ctx  Context
	word *Word
}

// NewYomi starts an empty Yomi of the given letter type.
func NewYomi(lt LetterType, ctx Context) *Yomi {
	return &Yomi{ctx: ctx, word: NewWord(lt)}
}

// newYomiFromWord wraps an existing Word (used by okuri-stripped
// restorations).
func newYomiFromWord(ctx Context, w *Word) *Yomi {
	return &Yomi{ctx: ctx, word: w}
}

func (y *Yomi) Type() TransformerType             { return TYomi }
func (y *Yomi) Context() Context                  { return y.ctx }
func (y *Yomi) WithContext(ctx Context) Transformer {
	return &Yomi{ctx: ctx, word: y.word}
}
func (y *Yomi) DisplayString() string { return "▽" + y.word.DisplayString() }
func (y *Yomi) BufferContent() string { return y.word.BufferContent() }
func (y *Yomi) IsEmpty() bool         { return y.word.IsEmpty() }

func (y *Yomi) clone() *Yomi { return &Yomi{ctx: y.ctx, word: y.word.Clone()} }

func (y *Yomi) PushCharacter(c rune) TransformResult {
	next := y.clone()
	if !next.word.Push(c) {
		return nil
	}
	if next.word.OkuriCompleted() {
		stripped := newYomiFromWord(next.ctx, next.word.DropOkuri())
		return some(stripped, next.tryComposition())
	}
	return some(next)
}

func (y *Yomi) PushSpace() TransformResult {
	if y.word.IsEmpty() {
		return nil
	}
	stripped := newYomiFromWord(y.ctx, y.word.DropOkuri())
	return some(stripped, y.tryComposition())
}

func (y *Yomi) PushEnter() TransformResult {
	return some(toCompletedWithBuffer(y.ctx, y.word.BufferContent()))
}

func (y *Yomi) PushEscape() TransformResult {
	if y.word.Okuri != nil {
		return some(newYomiFromWord(y.ctx, y.word.DropOkuri()))
	}
	return some()
}

func (y *Yomi) PushBackspace() TransformResult {
	if y.word.IsEmpty() {
		return nil
	}
	next := y.clone()
	if !next.word.PopChar() {
		return some()
	}
	if next.word.IsEmpty() {
		return some()
	}
	return some(next)
}

func (y *Yomi) PushDelete() TransformResult { return y.PushBackspace() }

func (y *Yomi) PushAnyCharacter(KeyCode) TransformResult { return nil }

// tryComposition looks the word's reading up in the dictionary, producing
// either a SelectCandidate (match found) or an UnknownWord (no match),
// per §4.8.
func (y *Yomi) tryComposition() Transformer {
	read := y.word.DicRead()
	if entry, ok := y.ctx.Dictionary.Transform(read); ok {
		return NewSelectCandidate(y.ctx, entry, y.word)
	}
	return NewUnknownWord(y.ctx, y.word)
}
