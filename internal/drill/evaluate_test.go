package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanadrill-go/internal/kana"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	a := kana.Entry{Hiragana: "あ", Katakana: "ア", Romaji: "a"}
	shi := kana.Entry{Hiragana: "し", Katakana: "シ", Romaji: "shi"}

	testCases := []struct {
		name     string
		entry    kana.Entry
		dir      kana.Direction
		input    string
		correct  bool
		expected string
		given    string
	}{
		{name: "romaji ignores case and padding", entry: a, dir: kana.Direction{From: kana.Hiragana, To: kana.Romaji}, input: " A ", correct: true, expected: "a", given: "A"},
		{name: "kana trailing space", entry: a, dir: kana.Direction{From: kana.Romaji, To: kana.Hiragana}, input: "あ ", correct: true, expected: "あ", given: "あ"},
		{name: "katakana is not hiragana", entry: a, dir: kana.Direction{From: kana.Romaji, To: kana.Hiragana}, input: "ア", correct: false, expected: "あ", given: "ア"},
		{name: "mixed case romaji", entry: shi, dir: kana.Direction{From: kana.Katakana, To: kana.Romaji}, input: "sHi", correct: true, expected: "shi", given: "sHi"},
		{name: "no fuzzy match", entry: shi, dir: kana.Direction{From: kana.Katakana, To: kana.Romaji}, input: "si", correct: false, expected: "shi", given: "si"},
		{name: "kana to kana", entry: shi, dir: kana.Direction{From: kana.Hiragana, To: kana.Katakana}, input: "シ", correct: true, expected: "シ", given: "シ"},
		{name: "tabs and newlines trimmed", entry: shi, dir: kana.Direction{From: kana.Katakana, To: kana.Hiragana}, input: "\tし\n", correct: true, expected: "し", given: "し"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fb := Evaluate(tc.entry, tc.dir, tc.input)
			assert.Equal(t, tc.correct, fb.IsCorrect)
			assert.Equal(t, tc.expected, fb.Expected)
			assert.Equal(t, tc.given, fb.Given)
		})
	}
}

func TestPrompt(t *testing.T) {
	e := kana.Entry{Hiragana: "つ", Katakana: "ツ", Romaji: "tsu"}
	assert.Equal(t, "tsu", Prompt(e, kana.Direction{From: kana.Romaji, To: kana.Katakana}))
	assert.Equal(t, "ツ", Prompt(e, kana.Direction{From: kana.Katakana, To: kana.Hiragana}))
}
