package drill

import (
	"math/rand/v2"

	"kanadrill-go/internal/kana"
)

// DrawState tracks which pool entries were shown in the current cycle.
// drawn is always a subset of Pool.
type DrawState struct {
	Pool  Pool
	drawn map[kana.Entry]struct{}
}

// NewDrawState starts a fresh cycle over pool.
func NewDrawState(pool Pool) DrawState {
	return DrawState{Pool: pool, drawn: map[kana.Entry]struct{}{}}
}

// Drawn reports whether e was already shown in the current cycle.
func (s DrawState) Drawn(e kana.Entry) bool {
	_, ok := s.drawn[e]
	return ok
}

// Remaining is the number of entries not yet shown in the current cycle.
func (s DrawState) Remaining() int {
	return len(s.Pool) - len(s.drawn)
}

// Draw picks uniformly among the entries not yet shown in this cycle. When
// the cycle is exhausted the drawn set is cleared first, so the last entry of
// one cycle may come up again as the first entry of the next.
//
// The input state is left untouched; the returned state carries the update.
func Draw(s DrawState, rng *rand.Rand) (kana.Entry, DrawState, error) {
	if len(s.Pool) == 0 {
		return kana.Entry{}, s, ErrNoQuestionsAvailable
	}

	drawn := make(map[kana.Entry]struct{}, len(s.drawn)+1)
	available := make([]kana.Entry, 0, len(s.Pool))
	for _, e := range s.Pool {
		if _, ok := s.drawn[e]; ok {
			drawn[e] = struct{}{}
			continue
		}
		available = append(available, e)
	}
	if len(available) == 0 {
		clear(drawn)
		available = append(available, s.Pool...)
	}

	e := available[rng.IntN(len(available))]
	drawn[e] = struct{}{}
	return e, DrawState{Pool: s.Pool, drawn: drawn}, nil
}
