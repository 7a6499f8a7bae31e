package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"kanadrill-go/internal/audio"
	"kanadrill-go/internal/drill"
	"kanadrill-go/internal/journal"
	"kanadrill-go/internal/kana"
)

// --- DATA STRUCTURES ---

type viewState int

const (
	viewTable viewState = iota
	viewDrill
	viewStats
)

const weakestShown = 10

type statsReloadedMsg struct {
	stats   []journal.KanaStat
	weakest []journal.KanaStat
	err     error
}

// statsSource is the part of the journal the stats view reads.
type statsSource interface {
	Stats(ctx context.Context) ([]journal.KanaStat, error)
	Weakest(ctx context.Context, n int) ([]journal.KanaStat, error)
}

type model struct {
	ds      *kana.Dataset
	session *drill.Session
	journal statsSource
	player  audio.Player
	log     *zap.Logger

	textInput textinput.Model
	state     viewState
	notice    string
	err       error

	// reference table
	tableScript kana.Script
	tableRow    int
	tableCol    int

	// stats view
	stats   []journal.KanaStat
	weakest []journal.KanaStat
}

// --- CORE LOGIC & HELPERS ---

func nextDirection(cur kana.Direction) kana.Direction {
	dirs := kana.Directions()
	for i, d := range dirs {
		if d == cur {
			return dirs[(i+1)%len(dirs)]
		}
	}
	return dirs[0]
}

func nextRange(cur kana.Range) kana.Range {
	ranges := kana.Ranges()
	for i, r := range ranges {
		if r == cur {
			return ranges[(i+1)%len(ranges)]
		}
	}
	return ranges[0]
}

func reloadStatsCmd(src statsSource) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := src.Stats(ctx)
		if err != nil {
			return statsReloadedMsg{err: err}
		}
		weakest, err := src.Weakest(ctx, weakestShown)
		if err != nil {
			return statsReloadedMsg{err: err}
		}
		return statsReloadedMsg{stats: stats, weakest: weakest}
	}
}

// --- BUBBLETEA IMPLEMENTATION ---

func newModel(ds *kana.Dataset, session *drill.Session, src statsSource, player audio.Player, log *zap.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Type the answer and press Enter..."
	ti.CharLimit = 16
	ti.Width = 20
	ti.Prompt = "> "
	ti.Focus()

	if player == nil {
		player = audio.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return model{
		ds:          ds,
		session:     session,
		journal:     src,
		player:      player,
		log:         log,
		textInput:   ti,
		state:       viewDrill,
		tableScript: kana.Hiragana,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			return m.switchView()
		}
	}

	switch m.state {
	case viewTable:
		return m.updateTable(msg)
	case viewDrill:
		return m.updateDrill(msg)
	case viewStats:
		return m.updateStats(msg)
	default:
		return m, nil
	}
}

func (m *model) switchView() (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.state {
	case viewTable:
		m.state = viewDrill
		m.textInput.Focus()
		return m, textinput.Blink
	case viewDrill:
		m.textInput.Blur()
		if m.journal == nil {
			m.state = viewTable
			return m, nil
		}
		m.state = viewStats
		return m, reloadStatsCmd(m.journal)
	default:
		m.state = viewTable
		return m, nil
	}
}

func (m *model) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	rows := m.ds.Rows()
	switch key.Type {
	case tea.KeyUp:
		if m.tableRow > 0 {
			m.tableRow--
		}
	case tea.KeyDown:
		if m.tableRow < len(rows)-1 {
			m.tableRow++
		}
	case tea.KeyLeft:
		if m.tableCol > 0 {
			m.tableCol--
		}
	case tea.KeyRight:
		m.tableCol++
	case tea.KeyEnter:
		if e, ok := m.tableCell(); ok {
			m.player.Play(e.Romaji)
		}
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "h":
			m.tableScript = kana.Hiragana
		case "k":
			m.tableScript = kana.Katakana
		case "r":
			m.tableScript = kana.Romaji
		}
	}
	m.clampTableCursor()
	return m, nil
}

func (m *model) clampTableCursor() {
	rows := m.ds.Rows()
	if len(rows) == 0 {
		m.tableRow, m.tableCol = 0, 0
		return
	}
	if n := len(rows[m.tableRow].Entries); m.tableCol >= n {
		m.tableCol = max(n-1, 0)
	}
}

func (m model) tableCell() (kana.Entry, bool) {
	rows := m.ds.Rows()
	if m.tableRow >= len(rows) || m.tableCol >= len(rows[m.tableRow].Entries) {
		return kana.Entry{}, false
	}
	e := rows[m.tableRow].Entries[m.tableCol]
	return e, e.Complete()
}

func (m *model) updateDrill(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.handleEnter()
			return m, nil

		case tea.KeyCtrlT:
			if err := m.session.SetDirection(nextDirection(m.session.Direction())); err != nil {
				m.log.Error("failed to change direction", zap.Error(err))
			}
			m.textInput.SetValue("")
			m.notice = ""
			return m, nil

		case tea.KeyCtrlG:
			m.session.SetRange(nextRange(m.session.Range()))
			m.textInput.SetValue("")
			m.notice = ""
			return m, nil

		case tea.KeyCtrlR:
			m.session.Reset()
			m.textInput.SetValue("")
			m.notice = ""
			return m, nil

		case tea.KeyCtrlP:
			if q, ok := m.session.Current(); ok {
				m.player.Play(q.Entry.Romaji)
			}
			return m, nil
		}
	case error:
		m.err = msg
		return m, nil
	}

	if m.session.State() == drill.StateAwaitingAnswer {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

// handleEnter starts, submits or advances depending on the session state.
func (m *model) handleEnter() {
	m.notice = ""
	switch m.session.State() {
	case drill.StateIdle:
		err := m.session.Start()
		if errors.Is(err, drill.ErrEmptyPool) {
			m.notice = "Nothing to drill in " + m.session.Range().Label() + "."
			return
		}
		if err != nil {
			m.log.Error("failed to start drill", zap.Error(err))
			return
		}
		m.textInput.SetValue("")
		m.textInput.Focus()

	case drill.StateAwaitingAnswer:
		fb, err := m.session.Submit(m.textInput.Value())
		if errors.Is(err, drill.ErrBlankSubmission) {
			return
		}
		if err != nil {
			m.log.Error("failed to submit answer", zap.Error(err))
			return
		}
		m.log.Debug("answer judged",
			zap.String("expected", fb.Expected),
			zap.String("given", fb.Given),
			zap.Bool("correct", fb.IsCorrect))

	case drill.StateAnswered:
		if err := m.session.Next(); err != nil {
			m.log.Error("failed to draw next question", zap.Error(err))
			return
		}
		m.textInput.SetValue("")
	}
}

func (m *model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(statsReloadedMsg); ok {
		if msg.err != nil {
			m.log.Error("failed to load stats", zap.Error(msg.err))
			m.err = msg.err
			return m, nil
		}
		m.stats = msg.stats
		m.weakest = msg.weakest
	}
	return m, nil
}
