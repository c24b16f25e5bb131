package engine

import "testing"

func pushYomi(t *testing.T, y *Yomi, s string) *Yomi {
	t.Helper()
	var cur Transformer = y
	for _, r := range s {
		res := cur.PushCharacter(r)
		if res == nil {
			t.Fatalf("PushCharacter(%q) rejected mid-input %q", r, s)
		}
		cur = res[len(res)-1]
	}
	return cur.(*Yomi)
}

func TestYomiPushSpaceTriggersCompositionOnKnownWord(t *testing.T) {
	dict := NewDictionary()
	dict.Put(DictionaryEntry{Read: "かんじ", Candidates: []Candidate{{Entry: "漢字"}}})
	y := pushYomi(t, NewYomi(LetterHiragana, testContext(dict)), "kanji")

	res := y.PushSpace()
	if res == nil || len(res) != 2 {
		t.Fatalf("PushSpace() = %+v, want a 2-element replacement", res)
	}
	sc, ok := res[1].(*SelectCandidate)
	if !ok {
		t.Fatalf("expected SelectCandidate as the new top, got %T", res[1])
	}
	if sc.currentText() != "漢字" {
		t.Fatalf("currentText() = %q, want %q", sc.currentText(), "漢字")
	}
}

func TestYomiPushSpaceUnknownWordFallback(t *testing.T) {
	y := pushYomi(t, NewYomi(LetterHiragana, testContext(nil)), "michigo")
	res := y.PushSpace()
	if res == nil || len(res) != 2 {
		t.Fatalf("PushSpace() = %+v, want a 2-element replacement", res)
	}
	if _, ok := res[1].(*UnknownWord); !ok {
		t.Fatalf("expected UnknownWord for an unregistered reading, got %T", res[1])
	}
}

func TestYomiOkuriCompletionAutoTriggersComposition(t *testing.T) {
	dict := NewDictionary()
	dict.Put(DictionaryEntry{Read: "おくr", Candidates: []Candidate{{Entry: "送"}}})
	y := NewYomi(LetterHiragana, testContext(dict))
	cur := pushYomi(t, y, "oku")

	res := cur.PushCharacter('R')
	if res == nil {
		t.Fatalf("PushCharacter('R') rejected")
	}
	cur = res[len(res)-1].(*Yomi)

	res2 := cur.PushCharacter('u')
	if res2 == nil || len(res2) != 2 {
		t.Fatalf("expected okuri completion to auto-trigger composition, got %+v", res2)
	}
	if _, ok := res2[1].(*SelectCandidate); !ok {
		t.Fatalf("expected SelectCandidate once okuri completes, got %T", res2[1])
	}
}

func TestYomiEnterCommitsRawBuffer(t *testing.T) {
	y := pushYomi(t, NewYomi(LetterHiragana, testContext(nil)), "ka")
	res := y.PushEnter()
	stopped, ok := asStopped(res[0])
	if !ok || !stopped.IsCompleated() {
		t.Fatalf("expected Compleated Stopped, got %+v", res[0])
	}
	if stopped.ctx.Result.StoppedBuffer != "か" {
		t.Fatalf("StoppedBuffer = %q, want %q", stopped.ctx.Result.StoppedBuffer, "か")
	}
}

func TestYomiBackspaceToEmptyPops(t *testing.T) {
	y := pushYomi(t, NewYomi(LetterHiragana, testContext(nil)), "a")
	res := y.PushBackspace()
	if res == nil || len(res) != 0 {
		t.Fatalf("expected backspacing the last character to pop, got %+v", res)
	}
}
