// Package journal keeps a per-process log of drill attempts in an in-memory
// sqlite database and aggregates accuracy per kana. Nothing outlives the
// process.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"kanadrill-go/internal/drill"
	"kanadrill-go/internal/kana"
)

const createAttemptsTableSQL = `
CREATE TABLE IF NOT EXISTS attempts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	hiragana TEXT NOT NULL,
	katakana TEXT NOT NULL,
	romaji TEXT NOT NULL,
	direction TEXT NOT NULL,
	given TEXT NOT NULL,
	expected TEXT NOT NULL,
	was_correct BOOLEAN NOT NULL,
	answered_at DATETIME NOT NULL
);`

// KanaStat aggregates the attempts on one entry.
type KanaStat struct {
	Entry        kana.Entry
	TotalPlays   int
	CorrectPlays int
}

// Accuracy is CorrectPlays/TotalPlays, 1 for unplayed entries.
func (s KanaStat) Accuracy() float64 {
	if s.TotalPlays == 0 {
		return 1
	}
	return float64(s.CorrectPlays) / float64(s.TotalPlays)
}

// Journal records attempts for the lifetime of the process.
type Journal struct {
	db        *sql.DB
	log       *zap.Logger
	sessionID uuid.UUID
}

var _ drill.Recorder = (*Journal)(nil)

// Open creates the in-memory database.
func Open(ctx context.Context, log *zap.Logger) (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createAttemptsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create attempts table: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Journal{db: db, log: log, sessionID: uuid.New()}, nil
}

// SessionID identifies this process's attempts.
func (j *Journal) SessionID() uuid.UUID {
	return j.sessionID
}

// Record stores one attempt. Failures are logged and otherwise ignored.
func (j *Journal) Record(a drill.Attempt) {
	e := a.Question.Entry
	_, err := j.db.Exec(
		`INSERT INTO attempts (session_id, hiragana, katakana, romaji, direction, given, expected, was_correct, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID.String(),
		e.Hiragana, e.Katakana, e.Romaji,
		a.Question.Direction.String(),
		a.Feedback.Given,
		a.Feedback.Expected,
		a.Feedback.IsCorrect,
		a.AnsweredAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		j.log.Error("failed to record attempt",
			zap.String("romaji", e.Romaji),
			zap.Error(err))
	}
}

// Count returns the number of recorded attempts.
func (j *Journal) Count(ctx context.Context) (int, error) {
	var n int
	if err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM attempts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return n, nil
}

// Stats aggregates attempts per entry, ordered by romaji.
func (j *Journal) Stats(ctx context.Context) ([]KanaStat, error) {
	query := `
		SELECT
			hiragana, katakana, romaji,
			COUNT(id) AS total_plays,
			SUM(CASE WHEN was_correct = 1 THEN 1 ELSE 0 END) AS correct_plays
		FROM attempts
		GROUP BY hiragana, katakana, romaji
		ORDER BY romaji ASC;
	`
	rows, err := j.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query kana stats: %w", err)
	}
	defer rows.Close()

	var stats []KanaStat
	for rows.Next() {
		var s KanaStat
		var correct sql.NullInt64
		if err := rows.Scan(&s.Entry.Hiragana, &s.Entry.Katakana, &s.Entry.Romaji, &s.TotalPlays, &correct); err != nil {
			return nil, fmt.Errorf("failed to scan kana stat row: %w", err)
		}
		s.CorrectPlays = int(correct.Int64)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Weakest returns up to n played entries with the lowest accuracy, ties
// broken by romaji. Entries answered correctly every time are left out.
func (j *Journal) Weakest(ctx context.Context, n int) ([]KanaStat, error) {
	stats, err := j.Stats(ctx)
	if err != nil {
		return nil, err
	}
	weak := stats[:0]
	for _, s := range stats {
		if s.CorrectPlays < s.TotalPlays {
			weak = append(weak, s)
		}
	}
	sort.SliceStable(weak, func(a, b int) bool {
		if weak[a].Accuracy() == weak[b].Accuracy() {
			return weak[a].Entry.Romaji < weak[b].Entry.Romaji
		}
		return weak[a].Accuracy() < weak[b].Accuracy()
	})
	if n >= 0 && len(weak) > n {
		weak = weak[:n]
	}
	return weak, nil
}

// Close releases the database; recorded attempts are gone afterwards.
func (j *Journal) Close() error {
	return j.db.Close()
}
