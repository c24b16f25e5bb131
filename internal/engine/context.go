package engine

// ReadingSuggester is an optional collaborator consulted by
// UnknownWordTransformer registration to propose a hiragana reading for a
// kanji-bearing literal. Nil-safe: when absent, registration behaves
// exactly as without it.
type ReadingSuggester interface {
	SuggestReading(text string) (string, bool)
}

// CompositionResult is the monoid the engine threads through the Context
// rather than operation signatures: committed text plus dictionary
// learning events. Identity is the zero value.
type CompositionResult struct {
	DictionaryUpdates []DictionaryEntry
	StoppedBuffer     string
}

// Merge concatenates stopped buffers and appends dictionary updates.
func (r CompositionResult) Merge(other CompositionResult) CompositionResult {
	var updates []DictionaryEntry
	updates = append(updates, r.DictionaryUpdates...)
	updates = append(updates, other.DictionaryUpdates...)
	return CompositionResult{
		DictionaryUpdates: updates,
		StoppedBuffer:     r.StoppedBuffer + other.StoppedBuffer,
	}
}

// PushBuffer appends s to the stopped buffer; pushing "" is a no-op.
func (r CompositionResult) PushBuffer(s string) CompositionResult {
	if s == "" {
		return r
	}
	r.StoppedBuffer += s
	return r
}

// PopStoppedBuffer trims one trailing rune.
func (r CompositionResult) PopStoppedBuffer() CompositionResult {
	if r.StoppedBuffer == "" {
		return r
	}
	runes := []rune(r.StoppedBuffer)
	r.StoppedBuffer = string(runes[:len(runes)-1])
	return r
}

// ClearStoppedBuffer empties the stopped buffer, keeping dictionary updates.
func (r CompositionResult) ClearStoppedBuffer() CompositionResult {
	r.StoppedBuffer = ""
	return r
}

// WithDictionaryUpdate appends one learning event.
func (r CompositionResult) WithDictionaryUpdate(e DictionaryEntry) CompositionResult {
	r.DictionaryUpdates = append(append([]DictionaryEntry(nil), r.DictionaryUpdates...), e)
	return r
}

// Context is the immutable-view bundle every transformer carries: shared,
// non-owning references to Config and Dictionary, plus the accumulated
// CompositionResult for the operation in flight.
type Context struct {
	Config            *Config
	Dictionary        *Dictionary
	Furigana          ReadingSuggester
	Result            CompositionResult
	RegistrationDepth int
}

// WithResult returns a copy of c with Result replaced.
func (c Context) WithResult(r CompositionResult) Context {
	c.Result = r
	return c
}

// Merge folds other's Result into c's Result.
func (c Context) Merge(other Context) Context {
	c.Result = c.Result.Merge(other.Result)
	return c
}
