package engine

// Continuous accumulates committed fragments from a repeatedly-restarting
// child transformer of a fixed letter type (§4.12), so e.g. typing a run of
// Hiragana syllables inside a registration prompt reads as one continuous
// buffer rather than resetting on every okuri-triggered commit.
type Continuous struct {
	ctx        Context
	letterType LetterType
	child      Transformer
	buffer     string
}

// NewContinuous starts an empty Continuous of the given letter type.
func NewContinuous(lt LetterType, ctx Context) *Continuous {
	return &Continuous{ctx: ctx, letterType: lt, child: freshContinuousChild(lt, ctx)}
}

func freshContinuousChild(lt LetterType, ctx Context) Transformer {
	if lt == LetterDirect {
		return NewDirect(ctx)
	}
	return NewLetterTransformer(lt, ctx)
}

func (c *Continuous) Type() TransformerType { return TContinuous }
func (c *Continuous) Context() Context      { return c.ctx }

func (c *Continuous) WithContext(ctx Context) Transformer {
	cp := *c
	cp.ctx = ctx
	cp.child = cp.child.WithContext(ctx)
	return &cp
}

func (c *Continuous) DisplayString() string { return c.buffer + c.child.DisplayString() }
func (c *Continuous) BufferContent() string { return c.buffer + c.child.BufferContent() }
func (c *Continuous) IsEmpty() bool         { return c.buffer == "" && c.child.IsEmpty() }

func (c *Continuous) clone() *Continuous {
	cp := *c
	return &cp
}

// absorb folds a delegated result from c.child into a new Continuous: a
// Compleated Stopped is absorbed into the running buffer and the child is
// restarted fresh; anything else just replaces the child (or pops to empty
// on Some([])).
func (c *Continuous) absorb(res TransformResult) TransformResult {
	if res == nil {
		return nil
	}
	if len(res) == 0 {
		next := c.clone()
		next.child = freshContinuousChild(c.letterType, c.ctx)
		return some(next)
	}
	last := res[len(res)-1]
	if stopped, ok := asStopped(last); ok {
		if stopped.IsCanceled() {
			if c.buffer == "" {
				return some()
			}
			return some(toCompletedWithBuffer(c.ctx, c.buffer))
		}
		next := &Continuous{
			ctx:        stopped.ctx.WithResult(stopped.ctx.Result.ClearStoppedBuffer()),
			letterType: c.letterType,
			buffer:     c.buffer + stopped.ctx.Result.StoppedBuffer,
		}
		next.child = freshContinuousChild(c.letterType, next.ctx)
		return some(next)
	}
	next := c.clone()
	next.ctx = last.Context()
	next.child = last
	return some(next)
}

func (c *Continuous) dispatch(op func(Transformer) TransformResult) TransformResult {
	return c.absorb(op(c.child))
}

func (c *Continuous) PushCharacter(ch rune) TransformResult {
	return c.dispatch(func(t Transformer) TransformResult { return t.PushCharacter(ch) })
}
func (c *Continuous) PushSpace() TransformResult {
	return c.dispatch(func(t Transformer) TransformResult { return t.PushSpace() })
}
func (c *Continuous) PushDelete() TransformResult {
	return c.dispatch(func(t Transformer) TransformResult { return t.PushDelete() })
}
func (c *Continuous) PushAnyCharacter(k KeyCode) TransformResult {
	return c.dispatch(func(t Transformer) TransformResult { return t.PushAnyCharacter(k) })
}

// PushEnter commits the running buffer plus whatever the child itself would
// commit, ending the Continuous.
func (c *Continuous) PushEnter() TransformResult {
	childRes := c.child.PushEnter()
	tail := c.child.BufferContent()
	if childRes != nil && len(childRes) > 0 {
		if stopped, ok := asStopped(childRes[len(childRes)-1]); ok && stopped.IsCompleated() {
			tail = stopped.ctx.Result.StoppedBuffer
		}
	}
	return some(toCompletedWithBuffer(c.ctx, c.buffer+tail))
}

// PushBackspace erases from the child first; once the child is empty it
// trims the running buffer instead of popping out entirely, matching the
// teacher's letter-transformer backspace behavior.
func (c *Continuous) PushBackspace() TransformResult {
	if !c.child.IsEmpty() {
		return c.dispatch(func(t Transformer) TransformResult { return t.PushBackspace() })
	}
	if c.buffer == "" {
		return nil
	}
	runes := []rune(c.buffer)
	next := c.clone()
	next.buffer = string(runes[:len(runes)-1])
	if next.IsEmpty() {
		return some()
	}
	return some(next)
}

// PushEscape cancels the whole Continuous when both buffer and child are
// empty; otherwise it clears down to empty.
func (c *Continuous) PushEscape() TransformResult {
	if c.IsEmpty() {
		return some()
	}
	return some(NewContinuous(c.letterType, c.ctx))
}
