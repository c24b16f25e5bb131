package engine

import "unicode"

// LetterTransformer generalizes HiraganaTransformer/KatakanaTransformer
// (§4.6) into one type parameterized by LetterType, since the two modes
// differ only in which kana table backs their BufferPairs.
type LetterTransformer struct {
	ctx        Context
	letterType LetterType
	buf        *BufferPairs
}

// NewLetterTransformer returns an empty LetterTransformer of lt.
func NewLetterTransformer(lt LetterType, ctx Context) *LetterTransformer {
	return &LetterTransformer{ctx: ctx, letterType: lt, buf: NewBufferPairs(lt)}
}

func (l *LetterTransformer) Type() TransformerType {
	if l.letterType == LetterKatakana {
		return TKatakana
	}
	return THiragana
}
func (l *LetterTransformer) Context() Context { return l.ctx }
func (l *LetterTransformer) WithContext(ctx Context) Transformer {
	cp := l.clone()
	cp.ctx = ctx
	return cp
}
func (l *LetterTransformer) DisplayString() string { return l.buf.String() }
func (l *LetterTransformer) BufferContent() string { return l.buf.String() }
func (l *LetterTransformer) IsEmpty() bool         { return l.buf.IsEmpty() }

func (l *LetterTransformer) clone() *LetterTransformer {
	return &LetterTransformer{ctx: l.ctx, letterType: l.letterType, buf: l.buf.Clone()}
}

func (l *LetterTransformer) PushCharacter(c rune) TransformResult {
	if c == '/' {
		return some(NewAbbr(l.ctx))
	}
	if unicode.IsUpper(c) {
		henkan := NewHenkan(l.letterType, l.ctx)
		return henkan.PushCharacter(unicode.ToLower(c))
	}

	next := l.clone()
	if !next.buf.Push(c) {
		return nil
	}
	if next.buf.IsEmpty() {
		return some()
	}
	if next.buf.AllStop() {
		return some(toCompletedWithBuffer(next.ctx, next.buf.String()))
	}
	return some(next)
}

func (l *LetterTransformer) PushEnter() TransformResult { return nil }
func (l *LetterTransformer) PushSpace() TransformResult { return nil }

func (l *LetterTransformer) PushBackspace() TransformResult {
	if l.buf.IsEmpty() {
		return nil
	}
	next := l.clone()
	next.buf.PopChar()
	if next.buf.IsEmpty() {
		return some()
	}
	if next.buf.AllStop() {
		return some(toCompletedWithBuffer(next.ctx, next.buf.String()))
	}
	return some(next)
}

func (l *LetterTransformer) PushDelete() TransformResult { return l.PushBackspace() }

func (l *LetterTransformer) PushEscape() TransformResult {
	if l.buf.IsEmpty() {
		return nil
	}
	return some()
}

func (l *LetterTransformer) PushAnyCharacter(KeyCode) TransformResult { return nil }

// TryChangeTransformer implements modeSwitcher: Direct, the other letter
// type, EnKatakana, EmEisu (§4.6's allow-set).
func (l *LetterTransformer) TryChangeTransformer(pressing map[KeyCode]struct{}) (Transformer, bool) {
	other := LetterHiragana
	otherAction := ActionEnterHiragana
	if l.letterType == LetterHiragana {
		other = LetterKatakana
		otherAction = ActionEnterKatakana
	}
	allow := []Action{ActionEnterDirect, otherAction, ActionEnterEnKatakana, ActionEnterEmEisu}
	action, ok := l.ctx.Config.TryChangeTransformer(allow, pressing)
	if !ok {
		return nil, false
	}
	switch action {
	case ActionEnterDirect:
		return NewDirect(l.ctx), true
	case ActionEnterEnKatakana:
		return NewEnKatakana(l.ctx), true
	case ActionEnterEmEisu:
		return NewEmEisu(l.ctx), true
	default:
		return NewLetterTransformer(other, l.ctx), true
	}
}
