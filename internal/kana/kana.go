// Package kana holds the gojuon dataset and the closed vocabularies used to
// drill it: scripts, transformation directions and row ranges.
package kana

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDirection is returned when a direction key cannot be parsed.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrInvalidDataset is returned when a dataset provider file is malformed.
	ErrInvalidDataset = errors.New("invalid dataset")
)

// Script is one of the three writings of a kana sound.
type Script int

const (
	Hiragana Script = iota
	Katakana
	Romaji
)

func (s Script) String() string {
	switch s {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Romaji:
		return "romaji"
	default:
		return fmt.Sprintf("Script(%d)", int(s))
	}
}

// ParseScript maps "hiragana", "katakana" or "romaji" to a Script.
func ParseScript(s string) (Script, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hiragana":
		return Hiragana, true
	case "katakana":
		return Katakana, true
	case "romaji":
		return Romaji, true
	}
	return 0, false
}

// Entry is one sound written in all three scripts.
type Entry struct {
	Hiragana string `json:"hiragana"`
	Katakana string `json:"katakana"`
	Romaji   string `json:"romaji"`
}

// Project returns the entry's text in the given script.
func (e Entry) Project(s Script) string {
	switch s {
	case Hiragana:
		return e.Hiragana
	case Katakana:
		return e.Katakana
	case Romaji:
		return e.Romaji
	default:
		return ""
	}
}

// Complete reports whether every script is populated. Gaps in the gojuon
// grid (yi, ye, wi, wu, we) are stored as incomplete entries.
func (e Entry) Complete() bool {
	return e.Hiragana != "" && e.Katakana != "" && e.Romaji != ""
}

// Row is a consonant row of the grid, e.g. "か行".
type Row struct {
	Label   string
	Entries []Entry
}

// Direction is an ordered (from, to) pair of distinct scripts.
type Direction struct {
	From Script
	To   Script
}

// Valid reports whether the direction names two distinct known scripts.
func (d Direction) Valid() bool {
	return d.From != d.To &&
		d.From >= Hiragana && d.From <= Romaji &&
		d.To >= Hiragana && d.To <= Romaji
}

// String renders the direction as its key, e.g. "hiragana-to-romaji".
func (d Direction) String() string {
	return d.From.String() + "-to-" + d.To.String()
}

// Label renders the direction for display, e.g. "hiragana → romaji".
func (d Direction) Label() string {
	return d.From.String() + " → " + d.To.String()
}

var directions = []Direction{
	{Hiragana, Romaji},
	{Katakana, Romaji},
	{Romaji, Hiragana},
	{Romaji, Katakana},
	{Hiragana, Katakana},
	{Katakana, Hiragana},
}

// Directions returns the six drill directions in menu order.
func Directions() []Direction {
	out := make([]Direction, len(directions))
	copy(out, directions)
	return out
}

// ParseDirection parses a key such as "romaji-to-katakana".
func ParseDirection(key string) (Direction, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(key), "-to-")
	if !ok {
		return Direction{}, fmt.Errorf("%w: %q", ErrInvalidDirection, key)
	}
	f, okFrom := ParseScript(from)
	t, okTo := ParseScript(to)
	d := Direction{From: f, To: t}
	if !okFrom || !okTo || !d.Valid() {
		return Direction{}, fmt.Errorf("%w: %q", ErrInvalidDirection, key)
	}
	return d, nil
}

// Range selects which rows contribute to a question pool: RangeAll or a row
// label.
type Range string

const RangeAll Range = "all"

var ranges = []Range{
	RangeAll,
	"あ行", "か行", "さ行", "た行", "な行",
	"は行", "ま行", "や行", "ら行", "わ行",
}

// Ranges returns the fixed range menu: "all" followed by the ten consonant rows.
func Ranges() []Range {
	out := make([]Range, len(ranges))
	copy(out, ranges)
	return out
}

// Includes reports whether a row with the given label falls in the range.
func (r Range) Includes(label string) bool {
	return r == RangeAll || string(r) == label
}

// Label renders the range for display.
func (r Range) Label() string {
	if r == RangeAll {
		return "all gojuon"
	}
	return string(r)
}
