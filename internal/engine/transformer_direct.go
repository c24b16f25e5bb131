package engine

// Direct is the passthrough transformer (§4.5): every printable character
// commits itself immediately, untransformed.
type Direct struct {
	ctx Context
}

// NewDirect returns a fresh Direct transformer.
func NewDirect(ctx Context) *Direct { return &Direct{ctx: ctx} }

func (d *Direct) Type() TransformerType         { return TDirect }
func (d *Direct) Context() Context              { return d.ctx }
func (d *Direct) WithContext(ctx Context) Transformer { return &Direct{ctx: ctx} }
func (d *Direct) DisplayString() string         { return "" }
func (d *Direct) BufferContent() string         { return "" }
func (d *Direct) IsEmpty() bool                 { return true }

func (d *Direct) PushCharacter(c rune) TransformResult {
	return some(toCompletedWithBuffer(d.ctx, string(c)))
}
func (d *Direct) PushEnter() TransformResult              { return nil }
func (d *Direct) PushSpace() TransformResult              { return nil }
func (d *Direct) PushBackspace() TransformResult          { return nil }
func (d *Direct) PushDelete() TransformResult             { return nil }
func (d *Direct) PushEscape() TransformResult             { return some() }
func (d *Direct) PushAnyCharacter(KeyCode) TransformResult { return nil }

// TryChangeTransformer implements modeSwitcher: Direct's allow-set is
// {Hiragana} only (§4.5, matching the original source's direct.rs
// `set![TransformerTypes::Hiragana]`) — Abbr is reachable only from
// Hiragana mode, not directly from Direct.
func (d *Direct) TryChangeTransformer(pressing map[KeyCode]struct{}) (Transformer, bool) {
	if _, ok := d.ctx.Config.TryChangeTransformer([]Action{ActionEnterHiragana}, pressing); ok {
		return NewLetterTransformer(LetterHiragana, d.ctx), true
	}
	return nil, false
}
