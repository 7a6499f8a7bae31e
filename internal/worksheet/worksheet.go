// Package worksheet builds printable kana writing drills from the same pools
// the interactive drill uses, and writes them as HTML or XLSX.
package worksheet

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kanadrill-go/internal/drill"
	"kanadrill-go/internal/kana"
)

// DefaultCount is the question count when none is configured.
const DefaultCount = 20

var ErrUnsupportedFormat = errors.New("unsupported worksheet format")

// Options selects what goes on the sheet.
type Options struct {
	Range       kana.Range
	Direction   kana.Direction
	Count       int
	RandomOrder bool
	ShowAnswers bool
}

// Item is one numbered question with its answer.
type Item struct {
	Number   int
	Question string
	Answer   string
}

// Sheet is a generated worksheet ready to render.
type Sheet struct {
	Range       kana.Range
	Direction   kana.Direction
	ShowAnswers bool
	GeneratedAt time.Time
	Items       []Item
}

// Generate draws up to opts.Count questions from the range's pool. The pool
// keeps table order unless RandomOrder is set.
func Generate(ds *kana.Dataset, opts Options, rng *rand.Rand) Sheet {
	count := opts.Count
	if count <= 0 {
		count = DefaultCount
	}

	pool := drill.BuildPool(ds, opts.Range)
	if opts.RandomOrder {
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}
	if len(pool) > count {
		pool = pool[:count]
	}

	items := make([]Item, len(pool))
	for i, e := range pool {
		items[i] = Item{
			Number:   i + 1,
			Question: drill.Prompt(e, opts.Direction),
			Answer:   e.Project(opts.Direction.To),
		}
	}
	return Sheet{
		Range:       opts.Range,
		Direction:   opts.Direction,
		ShowAnswers: opts.ShowAnswers,
		GeneratedAt: time.Now(),
		Items:       items,
	}
}

// Export writes the sheet to path, choosing the format by extension.
func Export(path string, sheet Sheet) error {
	var write func(*os.File, Sheet) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		write = func(f *os.File, s Sheet) error { return WriteHTML(f, s) }
	case ".xlsx":
		write = func(f *os.File, s Sheet) error { return WriteXLSX(f, s) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, sheet); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
