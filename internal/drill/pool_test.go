package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanadrill-go/internal/kana"
)

func testDataset() *kana.Dataset {
	return kana.NewDataset([]kana.Row{
		{Label: "あ行", Entries: []kana.Entry{
			{Hiragana: "あ", Katakana: "ア", Romaji: "a"},
			{Hiragana: "い", Katakana: "イ", Romaji: "i"},
		}},
		{Label: "や行", Entries: []kana.Entry{
			{Hiragana: "や", Katakana: "ヤ", Romaji: "ya"},
			{},
			{Hiragana: "ゆ", Katakana: "ユ", Romaji: "yu"},
			{Hiragana: "ゑ", Romaji: "we"},
		}},
	})
}

func TestBuildPool(t *testing.T) {
	t.Parallel()
	ds := testDataset()

	testCases := []struct {
		name string
		rng  kana.Range
		want []string
	}{
		{name: "all rows", rng: kana.RangeAll, want: []string{"a", "i", "ya", "yu"}},
		{name: "single row", rng: "あ行", want: []string{"a", "i"}},
		{name: "gaps dropped", rng: "や行", want: []string{"ya", "yu"}},
		{name: "unmatched label", rng: "か行", want: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pool := BuildPool(ds, tc.rng)
			got := make([]string, 0, len(pool))
			for _, e := range pool {
				assert.True(t, e.Complete())
				got = append(got, e.Romaji)
			}
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestBuildPoolDefaultDataset(t *testing.T) {
	ds := kana.Default()
	assert.Len(t, BuildPool(ds, kana.RangeAll), 46)
	assert.Len(t, BuildPool(ds, "や行"), 3)
	assert.Len(t, BuildPool(ds, "わ行"), 2)
	for _, r := range kana.Ranges()[1:] {
		assert.NotEmpty(t, BuildPool(ds, r), "range %s", r)
	}
}

func TestBuildPoolIsFresh(t *testing.T) {
	ds := testDataset()
	first := BuildPool(ds, kana.RangeAll)
	first[0].Romaji = "changed"
	assert.Equal(t, "a", BuildPool(ds, kana.RangeAll)[0].Romaji)
}
