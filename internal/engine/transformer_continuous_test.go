package engine

import "testing"

func pushContinuous(t *testing.T, c Transformer, s string) Transformer {
	t.Helper()
	for _, r := range s {
		res := c.PushCharacter(r)
		if res == nil {
			t.Fatalf("PushCharacter(%q) returned None mid-input %q", r, s)
		}
		if len(res) == 0 {
			t.Fatalf("PushCharacter(%q) popped the Continuous mid-input %q", r, s)
		}
		c = res[len(res)-1]
	}
	return c
}

func TestContinuousAccumulatesAcrossRestarts(t *testing.T) {
	c := NewContinuous(LetterHiragana, testContext(nil))
	got := pushContinuous(t, c, "kai")
	if got.BufferContent() != "かい" {
		t.Fatalf("BufferContent() = %q, want %q", got.BufferContent(), "かい")
	}
}

func TestContinuousBackspaceTrimsBuffer(t *testing.T) {
	c := NewContinuous(LetterHiragana, testContext(nil))
	got := pushContinuous(t, c, "kai")
	res := got.PushBackspace()
	if res == nil || len(res) == 0 {
		t.Fatalf("expected a surviving Continuous after one backspace on a two-syllable buffer")
	}
	if res[len(res)-1].BufferContent() != "か" {
		t.Fatalf("BufferContent() after backspace = %q, want %q", res[len(res)-1].BufferContent(), "か")
	}
}

func TestContinuousEnterCommitsWholeBuffer(t *testing.T) {
	c := NewContinuous(LetterHiragana, testContext(nil))
	got := pushContinuous(t, c, "kai")
	res := got.PushEnter()
	if res == nil || len(res) == 0 {
		t.Fatalf("PushEnter returned no result")
	}
	stopped, ok := asStopped(res[len(res)-1])
	if !ok || !stopped.IsCompleated() {
		t.Fatalf("expected a Compleated Stopped, got %+v", res[len(res)-1])
	}
	if stopped.ctx.Result.StoppedBuffer != "かい" {
		t.Fatalf("StoppedBuffer = %q, want %q", stopped.ctx.Result.StoppedBuffer, "かい")
	}
}

func TestContinuousEscapeResetsNonEmptyBuffer(t *testing.T) {
	c := NewContinuous(LetterHiragana, testContext(nil))
	got := pushContinuous(t, c, "ka")
	res := got.PushEscape()
	if res == nil || len(res) == 0 {
		t.Fatalf("expected escape to reset rather than pop a non-empty Continuous")
	}
	if !res[len(res)-1].IsEmpty() {
		t.Fatalf("expected a fresh empty Continuous after escape")
	}
}

func TestContinuousEscapePopsWhenEmpty(t *testing.T) {
	c := NewContinuous(LetterHiragana, testContext(nil))
	res := c.PushEscape()
	if res == nil || len(res) != 0 {
		t.Fatalf("expected escape on an empty Continuous to pop, got %+v", res)
	}
}
