package drill

import (
	"fmt"
	"math/rand/v2"
	"time"

	"kanadrill-go/internal/kana"
)

// State is the session's position in the drill loop.
type State int

const (
	StateIdle State = iota
	StateAwaitingAnswer
	StateAnswered
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting answer"
	case StateAnswered:
		return "answered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Question is the entry on screen and the direction it is asked in.
type Question struct {
	Entry     kana.Entry
	Direction kana.Direction
}

// Prompt is the text shown to the learner.
func (q Question) Prompt() string {
	return Prompt(q.Entry, q.Direction)
}

// Attempt is one committed answer, handed to the Recorder.
type Attempt struct {
	Question   Question
	Feedback   Feedback
	AnsweredAt time.Time
}

// Recorder receives every committed attempt. Implementations are best
// effort and must not fail the drill.
type Recorder interface {
	Record(a Attempt)
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for sampling.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithRecorder sets the attempt recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithRange sets the initial range. Defaults to kana.RangeAll.
func WithRange(r kana.Range) Option {
	return func(s *Session) { s.rangeSel = r }
}

// WithDirection sets the initial direction. Defaults to hiragana → romaji.
func WithDirection(d kana.Direction) Option {
	return func(s *Session) { s.direction = d }
}

// Session is one learner's drill. It is driven by serialized intents and is
// not safe for concurrent use.
type Session struct {
	ds        *kana.Dataset
	rng       *rand.Rand
	recorder  Recorder
	now       func() time.Time
	rangeSel  kana.Range
	direction kana.Direction

	state    State
	draw     DrawState
	current  *Question
	feedback *Feedback
	score    Score
}

// NewSession creates an idle session over ds.
func NewSession(ds *kana.Dataset, opts ...Option) *Session {
	s := &Session{
		ds:        ds,
		rangeSel:  kana.RangeAll,
		direction: kana.Direction{From: kana.Hiragana, To: kana.Romaji},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s.rebuild()
	return s
}

// rebuild derives a fresh pool for the current range and drops the cycle.
func (s *Session) rebuild() {
	s.draw = NewDrawState(BuildPool(s.ds, s.rangeSel))
	s.toIdle()
}

func (s *Session) toIdle() {
	s.state = StateIdle
	s.current = nil
	s.feedback = nil
}

// SetRange switches the row selection. The score is kept.
func (s *Session) SetRange(r kana.Range) {
	s.rangeSel = r
	s.rebuild()
}

// SetDirection switches the transformation direction. The score is kept.
func (s *Session) SetDirection(d kana.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %s", kana.ErrInvalidDirection, d)
	}
	s.direction = d
	s.rebuild()
	return nil
}

// Start draws the first question.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, s.state)
	}
	if len(s.draw.Pool) == 0 {
		return ErrEmptyPool
	}
	return s.drawNext()
}

// Submit judges input against the current question and commits the verdict.
// Blank input is rejected without touching the session.
func (s *Session) Submit(input string) (Feedback, error) {
	if s.state != StateAwaitingAnswer {
		return Feedback{}, fmt.Errorf("%w: submit while %s", ErrInvalidTransition, s.state)
	}
	fb := Evaluate(s.current.Entry, s.current.Direction, input)
	if fb.Given == "" {
		return Feedback{}, ErrBlankSubmission
	}

	s.score = s.score.Commit(fb.IsCorrect)
	s.feedback = &fb
	s.state = StateAnswered

	if s.recorder != nil {
		s.recorder.Record(Attempt{Question: *s.current, Feedback: fb, AnsweredAt: s.now()})
	}
	return fb, nil
}

// Next moves on from an answered question.
func (s *Session) Next() error {
	if s.state != StateAnswered {
		return fmt.Errorf("%w: next while %s", ErrInvalidTransition, s.state)
	}
	return s.drawNext()
}

// Reset clears the score, the current question and the drawn set.
func (s *Session) Reset() {
	s.score = ResetScore()
	s.draw = NewDrawState(s.draw.Pool)
	s.toIdle()
}

func (s *Session) drawNext() error {
	e, next, err := Draw(s.draw, s.rng)
	if err != nil {
		return err
	}
	s.draw = next
	s.current = &Question{Entry: e, Direction: s.direction}
	s.feedback = nil
	s.state = StateAwaitingAnswer
	return nil
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Current returns the question on screen, if any.
func (s *Session) Current() (Question, bool) {
	if s.current == nil {
		return Question{}, false
	}
	return *s.current, true
}

// Feedback returns the verdict for the current question, if answered.
func (s *Session) Feedback() (Feedback, bool) {
	if s.feedback == nil {
		return Feedback{}, false
	}
	return *s.feedback, true
}

func (s *Session) Score() Score              { return s.score }
func (s *Session) Range() kana.Range         { return s.rangeSel }
func (s *Session) Direction() kana.Direction { return s.direction }
func (s *Session) PoolSize() int             { return len(s.draw.Pool) }

// Remaining is how many entries are left before the pool reshuffles.
func (s *Session) Remaining() int { return s.draw.Remaining() }
