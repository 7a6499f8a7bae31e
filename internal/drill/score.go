package drill

import "math"

// Score counts answered questions. Correct never exceeds Total.
type Score struct {
	Correct int
	Total   int
}

// ResetScore returns the zero score.
func ResetScore() Score {
	return Score{}
}

// Commit records one verdict.
func (s Score) Commit(isCorrect bool) Score {
	s.Total++
	if isCorrect {
		s.Correct++
	}
	return s
}

// Accuracy is Correct/Total; ok is false before the first answer.
func (s Score) Accuracy() (acc float64, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Correct) / float64(s.Total), true
}

// Percent is the accuracy rounded to a whole percentage, 0 before the first
// answer.
func (s Score) Percent() int {
	acc, ok := s.Accuracy()
	if !ok {
		return 0
	}
	return int(math.Round(acc * 100))
}
