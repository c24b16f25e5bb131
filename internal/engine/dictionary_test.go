package engine

import (
	"strings"
	"testing"
)

func TestParseCandidatePlain(t *testing.T) {
	c, ok := ParseCandidate("漢字")
	if !ok {
		t.Fatalf("ParseCandidate rejected a plain entry")
	}
	if c.Entry != "漢字" || c.HasAnnotation {
		t.Fatalf("got %+v, want plain 漢字", c)
	}
}

func TestParseCandidateAnnotated(t *testing.T) {
	c, ok := ParseCandidate("幹事;organizer")
	if !ok {
		t.Fatalf("ParseCandidate rejected an annotated entry")
	}
	if c.Entry != "幹事" || !c.HasAnnotation || c.Annotation != "organizer" {
		t.Fatalf("got %+v, want 幹事 annotated \"organizer\"", c)
	}
}

func TestParseCandidateEmptyRejected(t *testing.T) {
	if _, ok := ParseCandidate("   "); ok {
		t.Fatalf("ParseCandidate accepted a blank entry")
	}
}

func TestParseDictionaryEntry(t *testing.T) {
	e, ok := ParseDictionaryEntry("かんじ/漢字/幹事;organizer/\r\n")
	if !ok {
		t.Fatalf("ParseDictionaryEntry rejected a well-formed line")
	}
	if e.Read != "かんじ" {
		t.Fatalf("Read = %q, want %q", e.Read, "かんじ")
	}
	if len(e.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(e.Candidates))
	}
	if e.Candidates[0].Entry != "漢字" || e.Candidates[1].Entry != "幹事" {
		t.Fatalf("candidates = %+v", e.Candidates)
	}
	if !e.Candidates[1].HasAnnotation || e.Candidates[1].Annotation != "organizer" {
		t.Fatalf("second candidate annotation = %+v", e.Candidates[1])
	}
}

func TestParseDictionaryEntryCommentLine(t *testing.T) {
	if _, ok := ParseDictionaryEntry(";; this is a comment"); ok {
		t.Fatalf("comment line was accepted as an entry")
	}
}

func TestParseDictionaryEntryBlankLine(t *testing.T) {
	if _, ok := ParseDictionaryEntry("   \r\n"); ok {
		t.Fatalf("blank line was accepted as an entry")
	}
}

func TestParseDictionaryEntryNoCandidates(t *testing.T) {
	if _, ok := ParseDictionaryEntry("かんじ/"); ok {
		t.Fatalf("entry with no candidates was accepted")
	}
}

func TestParseDictionaryMultilineCRLF(t *testing.T) {
	src := ";; header comment\r\nかんじ/漢字/\r\nあい/愛/\r\n"
	d := ParseDictionary(strings.NewReader(src))
	if _, ok := d.Transform("かんじ"); !ok {
		t.Fatalf("かんじ not found after CRLF parse")
	}
	if _, ok := d.Transform("あい"); !ok {
		t.Fatalf("あい not found after CRLF parse")
	}
}

func TestDictionaryPutLastWriteWins(t *testing.T) {
	d := NewDictionary()
	d.Put(DictionaryEntry{Read: "あい", Candidates: []Candidate{{Entry: "愛"}}})
	d.Put(DictionaryEntry{Read: "あい", Candidates: []Candidate{{Entry: "哀"}}})
	e, ok := d.Transform("あい")
	if !ok {
		t.Fatalf("あい missing")
	}
	if e.Candidates[0].Entry != "哀" {
		t.Fatalf("last write did not win: got %q", e.Candidates[0].Entry)
	}
}

func TestDictionaryEntries(t *testing.T) {
	d := NewDictionary()
	d.Put(DictionaryEntry{Read: "あい", Candidates: []Candidate{{Entry: "愛"}}})
	d.Put(DictionaryEntry{Read: "かんじ", Candidates: []Candidate{{Entry: "漢字"}}})
	if got := len(d.Entries()); got != 2 {
		t.Fatalf("Entries() returned %d entries, want 2", got)
	}
}
