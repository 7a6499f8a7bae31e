// Package drill is the kana question engine: it derives question pools from
// the dataset, samples without repetition, judges typed answers and keeps
// score for a single practice session.
package drill

import "errors"

var (
	// ErrNoQuestionsAvailable is returned by Draw when the pool is empty.
	ErrNoQuestionsAvailable = errors.New("no questions available")

	// ErrEmptyPool is returned by Session.Start when the selected range has
	// nothing to drill. An unmatched range label ends up here as well.
	ErrEmptyPool = errors.New("empty question pool")

	// ErrBlankSubmission is returned when an answer is empty after trimming.
	ErrBlankSubmission = errors.New("blank submission")

	// ErrInvalidTransition is returned when an intent does not apply to the
	// current session state.
	ErrInvalidTransition = errors.New("invalid transition")
)
