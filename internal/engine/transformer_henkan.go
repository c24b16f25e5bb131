package engine

// Henkan is the conversion aspect (§4.7): a thin, stack-holding wrapper
// around Yomi that keeps Type()==THenkan stable as its internal stack
// walks Yomi→SelectCandidate→UnknownWord and back. The outer stack lets
// an UnknownWord opened from SelectCandidate's "past last candidate"
// transition unwind back to that SelectCandidate, not to bare Yomi (§9(c)).
type Henkan struct {
	ctx   Context
	stack []Transformer
}

// NewHenkan starts a Henkan wrapping a fresh Yomi of lt.
func NewHenkan(lt LetterType, ctx Context) *Henkan {
	return &Henkan{ctx: ctx, stack: []Transformer{NewYomi(lt, ctx)}}
}

func newHenkanWithStack(stack []Transformer) *Henkan {
	return &Henkan{ctx: stack[len(stack)-1].Context(), stack: stack}
}

func (h *Henkan) Type() TransformerType { return THenkan }
func (h *Henkan) Context() Context      { return h.ctx }

func (h *Henkan) WithContext(ctx Context) Transformer {
	newStack := append([]Transformer(nil), h.stack...)
	newStack[len(newStack)-1] = newStack[len(newStack)-1].WithContext(ctx)
	return &Henkan{ctx: ctx, stack: newStack}
}

func (h *Henkan) top() Transformer          { return h.stack[len(h.stack)-1] }
func (h *Henkan) DisplayString() string     { return h.top().DisplayString() }
func (h *Henkan) BufferContent() string     { return h.top().BufferContent() }
func (h *Henkan) IsEmpty() bool             { return h.top().IsEmpty() }

// wrapResult applies the §4.4 stack protocol for a child result obtained
// against h.stack's top: None leaves the caller to decide, Some([]) pops,
// Some([t1..tn]) replaces the top by t1..tn. If the new top is Stopped,
// the Stopped is bubbled up directly so Composition can drain it; the
// Henkan wrapper itself would otherwise hide it.
func (h *Henkan) wrapResult(res TransformResult) TransformResult {
	if res == nil {
		return nil
	}
	rest := h.stack[:len(h.stack)-1]
	if len(res) == 0 {
		if len(rest) == 0 {
			return some()
		}
		return some(newHenkanWithStack(rest))
	}
	newStack := append(append([]Transformer{}, rest...), res...)
	if stopped, ok := asStopped(newStack[len(newStack)-1]); ok {
		return some(stopped)
	}
	return some(newHenkanWithStack(newStack))
}

func (h *Henkan) dispatch(op func(Transformer) TransformResult) TransformResult {
	return h.wrapResult(op(h.top()))
}

func (h *Henkan) PushCharacter(c rune) TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushCharacter(c) })
}
func (h *Henkan) PushEnter() TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushEnter() })
}
func (h *Henkan) PushSpace() TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushSpace() })
}
func (h *Henkan) PushBackspace() TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushBackspace() })
}
func (h *Henkan) PushDelete() TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushDelete() })
}
func (h *Henkan) PushEscape() TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushEscape() })
}
func (h *Henkan) PushAnyCharacter(k KeyCode) TransformResult {
	return h.dispatch(func(t Transformer) TransformResult { return t.PushAnyCharacter(k) })
}

// selectCandidateCommitter is implemented by SelectCandidate (and forwarded
// by Henkan) to support the "printable char arrives while a candidate is on
// display" redelivery path described in §4.9.
type selectCandidateCommitter interface {
	CommitAndRedeliver(c rune) (TransformResult, bool)
}

// CommitAndRedeliver forwards to the stack top when it is itself a
// selectCandidateCommitter.
func (h *Henkan) CommitAndRedeliver(c rune) (TransformResult, bool) {
	cc, ok := h.top().(selectCandidateCommitter)
	if !ok {
		return nil, false
	}
	res, handled := cc.CommitAndRedeliver(c)
	if !handled {
		return nil, false
	}
	return h.wrapResult(res), true
}
