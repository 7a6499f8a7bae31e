package kana

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed gojuon_data.json
var defaultData []byte

// Dataset is the immutable table of gojuon rows.
type Dataset struct {
	rows []Row
}

// NewDataset builds a dataset from rows. The rows are copied.
func NewDataset(rows []Row) *Dataset {
	cp := make([]Row, len(rows))
	for i, r := range rows {
		cp[i] = Row{Label: r.Label, Entries: append([]Entry(nil), r.Entries...)}
	}
	return &Dataset{rows: cp}
}

// Rows returns a copy of the rows in table order.
func (d *Dataset) Rows() []Row {
	return NewDataset(d.rows).rows
}

// Labels returns the row labels in table order.
func (d *Dataset) Labels() []string {
	out := make([]string, len(d.rows))
	for i, r := range d.rows {
		out[i] = r.Label
	}
	return out
}

// Lookup finds the complete entry written as text in any script.
func (d *Dataset) Lookup(text string) (Entry, bool) {
	for _, r := range d.rows {
		for _, e := range r.Entries {
			if !e.Complete() {
				continue
			}
			if e.Hiragana == text || e.Katakana == text || e.Romaji == text {
				return e, true
			}
		}
	}
	return Entry{}, false
}

type providerFile struct {
	Gojuon []struct {
		Row    string  `json:"row"`
		Sounds []Entry `json:"sounds"`
	} `json:"gojuon"`
}

// Parse reads the provider schema:
//
//	{"gojuon": [{"row": "あ行", "sounds": [{"hiragana": "あ", "katakana": "ア", "romaji": "a"}, {}]}]}
//
// Missing fields become empty strings and mark the sound as a gap.
func Parse(r io.Reader) (*Dataset, error) {
	var pf providerFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	rows := make([]Row, 0, len(pf.Gojuon))
	for i, raw := range pf.Gojuon {
		if raw.Row == "" {
			return nil, fmt.Errorf("%w: row %d has no label", ErrInvalidDataset, i)
		}
		rows = append(rows, Row{Label: raw.Row, Entries: raw.Sounds})
	}
	return &Dataset{rows: rows}, nil
}

// LoadFile parses a dataset provider file from disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// Default returns the embedded gojuon table.
func Default() *Dataset {
	ds, err := Parse(bytes.NewReader(defaultData))
	if err != nil {
		panic(fmt.Sprintf("kana: embedded dataset: %v", err))
	}
	return ds
}
