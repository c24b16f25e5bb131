package engine

// convertDirect is the passthrough table: every input is emitted verbatim
// and immediately finalized, ignoring any pending buffer.
func convertDirect(_ string, input rune) ([]BufferPair, bool) {
	return []BufferPair{{LetterType: LetterDirect, Buffer: string(input), State: StateStop}}, true
}
