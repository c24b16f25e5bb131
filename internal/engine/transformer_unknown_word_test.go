package engine

import "testing"

// fakeReadingSuggester is a stub ReadingSuggester for exercising the
// furigana-assist path without the real kagome-backed implementation.
type fakeReadingSuggester struct {
	reading string
	ok      bool
}

func (f fakeReadingSuggester) SuggestReading(string) (string, bool) { return f.reading, f.ok }

func pushUnknownWord(t *testing.T, u *UnknownWord, s string) *UnknownWord {
	t.Helper()
	var cur Transformer = u
	for _, r := range s {
		res := cur.PushCharacter(r)
		if res == nil || len(res) == 0 {
			t.Fatalf("PushCharacter(%q) unexpectedly stopped/popped registration", r)
		}
		cur = res[len(res)-1]
	}
	return cur.(*UnknownWord)
}

func TestUnknownWordRegistersPlainKanaWithoutAnnotation(t *testing.T) {
	ctx := testContext(nil)
	word := NewWord(LetterHiragana)
	for _, r := range "michigo" {
		word.Push(r)
	}
	u := NewUnknownWord(ctx, word)
	u = pushUnknownWord(t, u, "fuga")

	res := u.PushEnter()
	stopped, ok := asStopped(res[len(res)-1])
	if !ok || !stopped.IsCompleated() {
		t.Fatalf("expected Compleated Stopped, got %+v", res[len(res)-1])
	}
	updates := stopped.ctx.Result.DictionaryUpdates
	if len(updates) != 1 {
		t.Fatalf("expected one dictionary update, got %d", len(updates))
	}
	if updates[0].Candidates[0].HasAnnotation {
		t.Fatalf("expected no reading annotation for a plain kana registration, got %q",
			updates[0].Candidates[0].Annotation)
	}
}

// TestUnknownWordAnnotatesKanjiCandidateWithSuggestedReading exercises a
// Henkan conversion inside the registration prompt: the test places a
// Henkan directly on the registration stack (standing in for the one an
// uppercase keystroke would open), and the kanji-bearing result gets
// annotated with ctx.Furigana's suggested reading (§11).
func TestUnknownWordAnnotatesKanjiCandidateWithSuggestedReading(t *testing.T) {
	dict := NewDictionary()
	dict.Put(DictionaryEntry{Read: "かんじ", Candidates: []Candidate{{Entry: "漢字"}}})
	ctx := testContext(dict)
	ctx.Furigana = fakeReadingSuggester{reading: "かんじ", ok: true}

	word := NewWord(LetterHiragana)
	for _, r := range "michigo" {
		word.Push(r)
	}
	u := NewUnknownWord(ctx, word)

	nested := NewHenkan(LetterHiragana, u.ctx)
	u = &UnknownWord{ctx: u.ctx, word: u.word, depth: u.depth, stack: []Transformer{nested}}
	u = pushUnknownWord(t, u, "kanji")

	var cur Transformer = u
	res := cur.PushSpace()
	if res == nil || len(res) == 0 {
		t.Fatalf("PushSpace into the nested Henkan returned no replacement")
	}
	cur = res[len(res)-1]

	res = cur.PushEnter()
	if res == nil || len(res) == 0 {
		t.Fatalf("PushEnter returned no result")
	}
	stopped, ok := asStopped(res[len(res)-1])
	if !ok || !stopped.IsCompleated() {
		t.Fatalf("expected Compleated Stopped, got %+v", res[len(res)-1])
	}
	updates := stopped.ctx.Result.DictionaryUpdates
	if len(updates) != 1 {
		t.Fatalf("expected one dictionary update, got %d", len(updates))
	}
	candidate := updates[0].Candidates[0]
	if candidate.Entry != "漢字" {
		t.Fatalf("registered candidate = %q, want %q", candidate.Entry, "漢字")
	}
	if !candidate.HasAnnotation || candidate.Annotation != "かんじ" {
		t.Fatalf("expected reading annotation %q, got %+v", "かんじ", candidate)
	}
}

func TestNextRegistrationDepthClampsAtMax(t *testing.T) {
	if got := nextRegistrationDepth(maxRegistrationDepth); got != maxRegistrationDepth {
		t.Fatalf("nextRegistrationDepth(max) = %d, want %d", got, maxRegistrationDepth)
	}
	if got := nextRegistrationDepth(0); got != 1 {
		t.Fatalf("nextRegistrationDepth(0) = %d, want 1", got)
	}
}

func TestContainsKanji(t *testing.T) {
	if containsKanji("ふが") {
		t.Fatalf("plain hiragana misidentified as containing kanji")
	}
	if !containsKanji("漢字") {
		t.Fatalf("kanji literal not identified as containing kanji")
	}
}
