package drill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCommitSequence(t *testing.T) {
	s := ResetScore()
	prevTotal := 0
	for _, ok := range []bool{true, false, true, true, false} {
		s = s.Commit(ok)
		assert.GreaterOrEqual(t, s.Total, prevTotal)
		assert.LessOrEqual(t, s.Correct, s.Total)
		prevTotal = s.Total
	}
	assert.Equal(t, Score{Correct: 3, Total: 5}, s)

	acc, ok := s.Accuracy()
	assert.True(t, ok)
	assert.InDelta(t, 0.6, acc, 1e-9)
	assert.Equal(t, 60, s.Percent())
}

func TestScoreAccuracyUndefinedWhenEmpty(t *testing.T) {
	_, ok := ResetScore().Accuracy()
	assert.False(t, ok)
	assert.Equal(t, 0, ResetScore().Percent())
}

func TestScorePercentRounds(t *testing.T) {
	assert.Equal(t, 67, Score{Correct: 2, Total: 3}.Percent())
	assert.Equal(t, 33, Score{Correct: 1, Total: 3}.Percent())
}
