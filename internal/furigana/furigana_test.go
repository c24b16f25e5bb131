package furigana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestReading(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	reading, ok := s.SuggestReading("漢字")
	assert.True(t, ok)
	assert.Equal(t, "かんじ", reading)
}

func TestSuggestReadingEmpty(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	_, ok := s.SuggestReading("")
	assert.False(t, ok)
}

func TestSuggestReadingNilSuggester(t *testing.T) {
	var s *Suggester
	_, ok := s.SuggestReading("漢字")
	assert.False(t, ok)
}

func TestKatakanaToHiragana(t *testing.T) {
	assert.Equal(t, "かんじ", katakanaToHiragana("カンジ"))
	assert.Equal(t, "abc", katakanaToHiragana("abc"))
}
