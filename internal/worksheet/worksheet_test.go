package worksheet

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kanadrill-go/internal/kana"
)

var hiraToRomaji = kana.Direction{From: kana.Hiragana, To: kana.Romaji}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(11, 13))
}

func TestGenerateOrdered(t *testing.T) {
	sheet := Generate(kana.Default(), Options{
		Range:     "か行",
		Direction: hiraToRomaji,
		Count:     20,
	}, seeded())

	require.Len(t, sheet.Items, 5)
	want := []string{"ka", "ki", "ku", "ke", "ko"}
	for i, item := range sheet.Items {
		assert.Equal(t, i+1, item.Number)
		assert.Equal(t, want[i], item.Answer)
	}
	assert.Equal(t, "か", sheet.Items[0].Question)
}

func TestGenerateRandomTruncates(t *testing.T) {
	ds := kana.Default()
	sheet := Generate(ds, Options{
		Range:       kana.RangeAll,
		Direction:   kana.Direction{From: kana.Romaji, To: kana.Katakana},
		Count:       10,
		RandomOrder: true,
	}, seeded())

	require.Len(t, sheet.Items, 10)
	seen := map[string]bool{}
	for _, item := range sheet.Items {
		assert.False(t, seen[item.Question], "duplicate %s", item.Question)
		seen[item.Question] = true
		e, ok := ds.Lookup(item.Question)
		require.True(t, ok)
		assert.Equal(t, e.Katakana, item.Answer)
	}
}

func TestGenerateDefaultsAndEmpty(t *testing.T) {
	ds := kana.Default()
	sheet := Generate(ds, Options{Range: kana.RangeAll, Direction: hiraToRomaji}, seeded())
	assert.Len(t, sheet.Items, DefaultCount)

	sheet = Generate(ds, Options{Range: "が行", Direction: hiraToRomaji, Count: 5}, seeded())
	assert.Empty(t, sheet.Items)
}

func TestWriteHTML(t *testing.T) {
	sheet := Generate(kana.Default(), Options{Range: "あ行", Direction: hiraToRomaji, Count: 5}, seeded())

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sheet))
	page := buf.String()
	assert.Contains(t, page, "hiragana → romaji")
	assert.Contains(t, page, "Range: あ行")
	assert.Contains(t, page, "Answer key")
	assert.Equal(t, 5*2, strings.Count(page, `class="question-item"`))
	assert.NotContains(t, page, "Answer: a")

	sheet.ShowAnswers = true
	buf.Reset()
	require.NoError(t, WriteHTML(&buf, sheet))
	page = buf.String()
	assert.Contains(t, page, "Answer: a")
	assert.NotContains(t, page, "Answer key")
}

func TestWriteHTMLEscapes(t *testing.T) {
	sheet := Sheet{
		Range:     kana.RangeAll,
		Direction: hiraToRomaji,
		Items:     []Item{{Number: 1, Question: "<b>", Answer: "&"}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, sheet))
	assert.Contains(t, buf.String(), "&lt;b&gt;")
	assert.NotContains(t, buf.String(), "<b>")
}

func TestWriteXLSX(t *testing.T) {
	sheet := Generate(kana.Default(), Options{Range: "さ行", Direction: hiraToRomaji, Count: 5}, seeded())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sheet))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{questionSheet, answerSheet}, f.GetSheetList())

	rows, err := f.GetRows(questionSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"No", "Question", "Answer"}, rows[0])
	assert.Equal(t, []string{"1", "さ"}, rows[1], "answer column left blank")

	key, err := f.GetRows(answerSheet)
	require.NoError(t, err)
	require.Len(t, key, 6)
	assert.Equal(t, []string{"2", "し", "shi"}, key[2])
}

func TestWriteXLSXWithAnswers(t *testing.T) {
	sheet := Generate(kana.Default(), Options{Range: "た行", Direction: hiraToRomaji, Count: 5, ShowAnswers: true}, seeded())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sheet))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{questionSheet}, f.GetSheetList())
	rows, err := f.GetRows(questionSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "つ", "tsu"}, rows[3])
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	sheet := Generate(kana.Default(), Options{Range: "な行", Direction: hiraToRomaji}, seeded())

	for _, name := range []string{"sheet.html", "sheet.HTM", "sheet.xlsx"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Export(path, sheet), name)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	err := Export(filepath.Join(dir, "sheet.pdf"), sheet)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
