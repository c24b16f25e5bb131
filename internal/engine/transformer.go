package engine

// TransformerType discriminates the closed set of transformer modes (§3).
// Represented as a tagged variant rather than a virtual-call hierarchy,
// since the set of modes is closed (§9 "Polymorphism without inheritance").
type TransformerType int

const (
	TDirect TransformerType = iota
	THiragana
	TKatakana
	TEnKatakana
	TEmEisu
	TAbbr
	TContinuous
	TYomi
	THenkan
	TSelectCandidate
	TUnknownWord
	TStopped
	TCanceled
)

// StoppedReason is the terminal reason a Stopped transformer carries.
type StoppedReason int

const (
	ReasonCompleated StoppedReason = iota
	ReasonCanceled
)

// TransformResult is the outcome of a transformer operation. nil means
// "not meaningful in this mode, leave the stack unchanged" (None). A
// non-nil, possibly empty, slice means "replace with these, in order" —
// an empty non-nil slice pops the transformer off the stack.
type TransformResult []Transformer

// some builds a non-nil TransformResult even when empty, so callers never
// have to worry about Go's nil-vs-empty-slice distinction directly.
func some(ts ...Transformer) TransformResult {
	out := make(TransformResult, len(ts))
	copy(out, ts)
	return out
}

// Transformer is the shared capability set every mode exposes (§3, §4.4).
// Every operation returns a new value (or sequence of values); the
// receiver is left unchanged — transformers are logically immutable.
type Transformer interface {
	Type() TransformerType
	Context() Context
	WithContext(ctx Context) Transformer
	DisplayString() string
	BufferContent() string
	IsEmpty() bool

	PushCharacter(c rune) TransformResult
	PushEnter() TransformResult
	PushSpace() TransformResult
	PushBackspace() TransformResult
	PushDelete() TransformResult
	PushEscape() TransformResult
	PushAnyCharacter(k KeyCode) TransformResult
}

// modeSwitcher is implemented by transformers that additionally expose the
// mode-switch check described in §4.5/§4.6 (try_change_transformer).
type modeSwitcher interface {
	TryChangeTransformer(pressing map[KeyCode]struct{}) (Transformer, bool)
}

// Stopped is the terminal transformer: it contributes nothing further to
// display, and its accumulated CompositionResult is drained by Composition.
type Stopped struct {
	ctx    Context
	Reason StoppedReason
}

func (s *Stopped) Type() TransformerType      { return TStopped }
func (s *Stopped) Context() Context           { return s.ctx }
func (s *Stopped) DisplayString() string      { return "" }
func (s *Stopped) BufferContent() string      { return s.ctx.Result.StoppedBuffer }
func (s *Stopped) IsEmpty() bool              { return s.ctx.Result.StoppedBuffer == "" }
func (s *Stopped) IsCompleated() bool         { return s.Reason == ReasonCompleated }
func (s *Stopped) IsCanceled() bool           { return s.Reason == ReasonCanceled }

func (s *Stopped) WithContext(ctx Context) Transformer {
	cp := *s
	cp.ctx = ctx
	return &cp
}

// Stopped transformers are terminal: no legal key sequence should dispatch
// into one (§7 "invariant violation ... must not be reachable").
func (s *Stopped) PushCharacter(rune) TransformResult      { panic("engine: push on Stopped transformer") }
func (s *Stopped) PushEnter() TransformResult              { panic("engine: push on Stopped transformer") }
func (s *Stopped) PushSpace() TransformResult               { panic("engine: push on Stopped transformer") }
func (s *Stopped) PushBackspace() TransformResult           { panic("engine: push on Stopped transformer") }
func (s *Stopped) PushDelete() TransformResult              { panic("engine: push on Stopped transformer") }
func (s *Stopped) PushEscape() TransformResult              { panic("engine: push on Stopped transformer") }
func (s *Stopped) PushAnyCharacter(KeyCode) TransformResult { panic("engine: push on Stopped transformer") }

// toCanceled returns a Stopped(Canceled) with a cleared buffer.
func toCanceled(ctx Context) *Stopped {
	return &Stopped{ctx: ctx.WithResult(ctx.Result.ClearStoppedBuffer()), Reason: ReasonCanceled}
}

// toCompletedWithBuffer returns a Stopped(Compleated) whose result carries
// stopped_buffer = s, preserving any dictionary updates already collected.
func toCompletedWithBuffer(ctx Context, s string) *Stopped {
	res := ctx.Result
	res.StoppedBuffer = s
	return &Stopped{ctx: ctx.WithResult(res), Reason: ReasonCompleated}
}

// asStopped type-asserts t to *Stopped.
func asStopped(t Transformer) (*Stopped, bool) {
	s, ok := t.(*Stopped)
	return s, ok
}
