package engine

import "unicode"

// maxRegistrationDepth is the ceiling of the depth counter each UnknownWord
// records. Opening a registration at this depth is not refused: the counter
// stops rising, but nesting itself is not limited.
const maxRegistrationDepth = 8

// nextRegistrationDepth returns the depth a freshly-opened UnknownWord
// should record, clamped at maxRegistrationDepth.
func nextRegistrationDepth(current int) int {
	if current >= maxRegistrationDepth {
		return current
	}
	return current + 1
}

// UnknownWord holds the originating Word for prompt display plus an
// internal stack of child transformers used to type the registration text
// (§4.10). The stack starts empty; the first keystroke spawns a
// ContinuousTransformer(Hiragana).
type UnknownWord struct {
	ctx   Context
	word  *Word
	depth int
	stack []Transformer
}

// NewUnknownWord opens a registration prompt for word.
func NewUnknownWord(ctx Context, word *Word) *UnknownWord {
	depth := nextRegistrationDepth(ctx.RegistrationDepth)
	ctx.RegistrationDepth = depth
	return &UnknownWord{ctx: ctx, word: word, depth: depth}
}

func (u *UnknownWord) Type() TransformerType { return TUnknownWord }
func (u *UnknownWord) Context() Context      { return u.ctx }

func (u *UnknownWord) WithContext(ctx Context) Transformer {
	newStack := append([]Transformer(nil), u.stack...)
	if len(newStack) > 0 {
		newStack[len(newStack)-1] = newStack[len(newStack)-1].WithContext(ctx)
	}
	return &UnknownWord{ctx: ctx, word: u.word, depth: u.depth, stack: newStack}
}

func (u *UnknownWord) DisplayString() string {
	s := "[登録: " + u.word.DisplayString() + "]"
	for _, t := range u.stack {
		s += t.DisplayString()
	}
	return s
}

func (u *UnknownWord) BufferContent() string {
	if len(u.stack) == 0 {
		return ""
	}
	return u.stack[len(u.stack)-1].BufferContent()
}

func (u *UnknownWord) IsEmpty() bool { return len(u.stack) == 0 }

func (u *UnknownWord) sendTarget() Transformer {
	if len(u.stack) == 0 {
		return NewContinuous(LetterHiragana, u.ctx)
	}
	return u.stack[len(u.stack)-1]
}

func (u *UnknownWord) restOfStack() []Transformer {
	if len(u.stack) == 0 {
		return nil
	}
	return u.stack[:len(u.stack)-1]
}

func (u *UnknownWord) dispatch(op func(Transformer) TransformResult) TransformResult {
	res := op(u.sendTarget())
	if res == nil {
		return nil
	}
	rest := u.restOfStack()
	if len(res) == 0 {
		return some(&UnknownWord{ctx: u.ctx, word: u.word, depth: u.depth, stack: rest})
	}
	newStack := append(append([]Transformer{}, rest...), res...)
	return some(&UnknownWord{ctx: newStack[len(newStack)-1].Context(), word: u.word, depth: u.depth, stack: newStack})
}

func (u *UnknownWord) PushCharacter(c rune) TransformResult {
	return u.dispatch(func(t Transformer) TransformResult { return t.PushCharacter(c) })
}

func (u *UnknownWord) PushSpace() TransformResult {
	return u.dispatch(func(t Transformer) TransformResult { return t.PushSpace() })
}

func (u *UnknownWord) PushDelete() TransformResult {
	return u.dispatch(func(t Transformer) TransformResult { return t.PushDelete() })
}

func (u *UnknownWord) PushAnyCharacter(k KeyCode) TransformResult {
	return u.dispatch(func(t Transformer) TransformResult { return t.PushAnyCharacter(k) })
}

// PushBackspace on an empty stack is a no-op: there is nothing beneath the
// prompt to erase into.
func (u *UnknownWord) PushBackspace() TransformResult {
	if len(u.stack) == 0 {
		return some(u)
	}
	return u.dispatch(func(t Transformer) TransformResult { return t.PushBackspace() })
}

// PushEnter delegates, and when the delegated result terminates in a
// Compleated Stopped, registers a new DictionaryEntry (read = the word's
// base dic_read, without its okuri-start consonant) before bubbling the
// Stopped up as the committed text (§4.10).
func (u *UnknownWord) PushEnter() TransformResult {
	res := u.sendTarget().PushEnter()
	if res == nil {
		return nil
	}
	rest := u.restOfStack()
	if len(res) == 0 {
		return some(&UnknownWord{ctx: u.ctx, word: u.word, depth: u.depth, stack: rest})
	}
	last := res[len(res)-1]
	if stopped, ok := asStopped(last); ok && stopped.IsCompleated() {
		buffer := stopped.ctx.Result.StoppedBuffer
		candidate := Candidate{Entry: buffer}
		if containsKanji(buffer) {
			if reading, ok := u.suggestReading(buffer); ok {
				candidate.Annotation = reading
				candidate.HasAnnotation = true
			}
		}
		entry := DictionaryEntry{Read: u.word.DicReadBase(), Candidates: []Candidate{candidate}}
		newResult := stopped.ctx.Result.WithDictionaryUpdate(entry)
		return some(&Stopped{ctx: stopped.ctx.WithResult(newResult), Reason: ReasonCompleated})
	}
	newStack := append(append([]Transformer{}, rest...), res...)
	return some(&UnknownWord{ctx: newStack[len(newStack)-1].Context(), word: u.word, depth: u.depth, stack: newStack})
}

// containsKanji reports whether s holds at least one CJK ideograph, the
// signal that a registered candidate is worth running through the
// furigana reading suggester rather than plain kana/ASCII.
func containsKanji(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// suggestReading consults ctx.Furigana, if one was wired in, for a
// hiragana reading of a kanji-bearing registered candidate (§11). Nil-safe:
// an absent suggester yields ok=false, same as no suggestion at all.
func (u *UnknownWord) suggestReading(literal string) (string, bool) {
	if u.ctx.Furigana == nil {
		return "", false
	}
	return u.ctx.Furigana.SuggestReading(literal)
}

// PushEscape cancels the whole registration only when nothing has been
// typed into it yet (an empty, non-Henkan Continuous on top); otherwise it
// delegates so the nested editor can unwind itself first.
func (u *UnknownWord) PushEscape() TransformResult {
	if len(u.stack) == 0 {
		return some()
	}
	top := u.stack[len(u.stack)-1]
	if cont, ok := top.(*Continuous); ok && cont.child.Type() != THenkan && cont.IsEmpty() {
		return some()
	}
	return u.dispatch(func(t Transformer) TransformResult { return t.PushEscape() })
}
