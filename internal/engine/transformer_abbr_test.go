package engine

import "testing"

func pushAbbr(t *testing.T, a *Abbr, s string) *Abbr {
	t.Helper()
	var cur Transformer = a
	for _, r := range s {
		res := cur.PushCharacter(r)
		if res == nil || len(res) == 0 {
			t.Fatalf("PushCharacter(%q) unexpectedly stopped/popped Abbr", r)
		}
		cur = res[len(res)-1]
	}
	return cur.(*Abbr)
}

func TestAbbrDisplayStringBeforeSpace(t *testing.T) {
	a := NewAbbr(testContext(nil))
	a = pushAbbr(t, a, "test")
	if got := a.DisplayString(); got != "▽test" {
		t.Fatalf("DisplayString() = %q, want %q", got, "▽test")
	}
}

func TestAbbrLooksUpKnownDictionaryEntry(t *testing.T) {
	dict := NewDictionary()
	dict.Put(DictionaryEntry{Read: "ascii", Candidates: []Candidate{{Entry: "ASCII"}}})
	a := NewAbbr(testContext(dict))
	a = pushAbbr(t, a, "ascii")

	res := a.PushSpace()
	if res == nil || len(res) == 0 {
		t.Fatalf("PushSpace returned no replacement")
	}
	sc, ok := res[len(res)-1].(*SelectCandidate)
	if !ok {
		t.Fatalf("expected SelectCandidate for a known abbr key, got %T", res[len(res)-1])
	}
	if sc.currentText() != "ASCII" {
		t.Fatalf("currentText() = %q, want %q", sc.currentText(), "ASCII")
	}
}

func TestAbbrUnknownKeyOpensRegistration(t *testing.T) {
	a := NewAbbr(testContext(nil))
	a = pushAbbr(t, a, "zzz")

	res := a.PushSpace()
	if res == nil || len(res) == 0 {
		t.Fatalf("PushSpace returned no replacement")
	}
	if _, ok := res[len(res)-1].(*UnknownWord); !ok {
		t.Fatalf("expected UnknownWord for an unknown abbr key, got %T", res[len(res)-1])
	}
}

func TestAbbrEnterCommitsLiteralBuffer(t *testing.T) {
	a := NewAbbr(testContext(nil))
	a = pushAbbr(t, a, "raw")
	res := a.PushEnter()
	if res == nil || len(res) == 0 {
		t.Fatalf("PushEnter returned no result")
	}
	stopped, ok := asStopped(res[len(res)-1])
	if !ok || !stopped.IsCompleated() || stopped.ctx.Result.StoppedBuffer != "raw" {
		t.Fatalf("expected Compleated Stopped with buffer %q, got %+v", "raw", res[len(res)-1])
	}
}

func TestAbbrEscapeAlwaysCancels(t *testing.T) {
	a := NewAbbr(testContext(nil))
	a = pushAbbr(t, a, "x")
	res := a.PushEscape()
	if res == nil || len(res) != 0 {
		t.Fatalf("expected Escape to pop Abbr unconditionally, got %+v", res)
	}
}

func TestAbbrBackspaceOnEmptyPops(t *testing.T) {
	a := NewAbbr(testContext(nil))
	res := a.PushBackspace()
	if res == nil || len(res) != 0 {
		t.Fatalf("expected Backspace on empty Abbr to pop, got %+v", res)
	}
}
