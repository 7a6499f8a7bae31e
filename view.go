package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"kanadrill-go/internal/drill"
)

// --- STYLING (using Lipgloss) ---

var (
	styleCorrect     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleIncorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	styleHighlight   = lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("0"))
	styleSubtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeader      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleError       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	styleInputDiff   = lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0"))
	styleCorrectDiff = lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0"))
	styleSetting     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
	styleBadge       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	styleQuestion    = lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.DoubleBorder())
	styleCell        = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
	styleBarGreen    = lipgloss.NewStyle().Background(lipgloss.Color("10")).SetString(" ")
	styleBarRed      = lipgloss.NewStyle().Background(lipgloss.Color("9")).SetString(" ")
)

var tableColumns = []string{"a", "i", "u", "e", "o"}

func (m model) View() string {
	if m.err != nil {
		return styleError.Render("Error: " + m.err.Error())
	}
	var body string
	switch m.state {
	case viewTable:
		body = m.viewTable()
	case viewDrill:
		body = m.viewDrill()
	case viewStats:
		body = m.viewStats()
	default:
		return "Unknown state."
	}
	return body + "\n" + styleSubtle.Render("tab: Switch view | esc: Quit")
}

func (m model) viewTable() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("kanadrill-go: Gojuon Table"))
	b.WriteString(fmt.Sprintf("  showing %s\n\n", styleSetting.Render(m.tableScript.String())))

	header := []string{styleCell.Render("")}
	for _, c := range tableColumns {
		header = append(header, styleCell.Render(styleSubtle.Render(c)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteRune('\n')

	for i, row := range m.ds.Rows() {
		cells := []string{styleCell.Render(row.Label)}
		for j, e := range row.Entries {
			text := e.Project(m.tableScript)
			if !e.Complete() {
				text = "·"
			}
			cell := styleCell.Render(text)
			if i == m.tableRow && j == m.tableCol {
				cell = styleHighlight.Render(cell)
			}
			cells = append(cells, cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteRune('\n')
	}

	b.WriteString(styleSubtle.Render("\n ←↑↓→: Move | enter: Play sound | h/k/r: Hiragana/Katakana/Romaji"))
	b.WriteRune('\n')
	return b.String()
}

func (m model) viewDrill() string {
	var b strings.Builder
	s := m.session
	b.WriteString(styleHeader.Render("kanadrill-go: Drill"))
	b.WriteRune('\n')
	b.WriteString(fmt.Sprintf("Mode: %s  Range: %s  Pool: %d\n",
		styleSetting.Render(s.Direction().Label()),
		styleSetting.Render(s.Range().Label()),
		s.PoolSize()))
	b.WriteString(renderScore(s.Score()))
	b.WriteString("\n\n")

	q, ok := s.Current()
	switch {
	case !ok:
		if m.notice != "" {
			b.WriteString(styleIncorrect.Render(m.notice))
		} else {
			b.WriteString("Press Enter to start.")
		}
		b.WriteRune('\n')
	default:
		b.WriteString(styleQuestion.Render(q.Prompt()))
		b.WriteString(fmt.Sprintf("\nType the %s:\n", q.Direction.To))
		b.WriteString(m.textInput.View())
		b.WriteRune('\n')
		if fb, answered := s.Feedback(); answered {
			b.WriteRune('\n')
			b.WriteString(renderFeedback(fb))
			b.WriteString(styleSubtle.Render("\nPress Enter for the next question..."))
			b.WriteRune('\n')
		}
	}

	b.WriteString(styleSubtle.Render("\n ctrl+t: Mode | ctrl+g: Range | ctrl+r: Reset | ctrl+p: Play sound"))
	b.WriteRune('\n')
	return b.String()
}

func (m model) viewStats() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("kanadrill-go: This Session"))
	b.WriteString("\n\n")
	if len(m.stats) == 0 {
		b.WriteString("No answers yet.\n")
		return b.String()
	}

	format := "%-4s %-4s %-4s | Plays: %-3d | %s %3.0f%%\n"
	for _, st := range m.stats {
		acc := st.Accuracy()
		b.WriteString(fmt.Sprintf(format, st.Entry.Hiragana, st.Entry.Katakana, st.Entry.Romaji,
			st.TotalPlays, renderBar(acc, 20), acc*100))
	}

	if len(m.weakest) > 0 {
		b.WriteString("\nNeeds work: ")
		names := make([]string, len(m.weakest))
		for i, w := range m.weakest {
			names[i] = styleIncorrect.Render(w.Entry.Hiragana + " " + w.Entry.Romaji)
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteRune('\n')
	}
	return b.String()
}

func renderScore(s drill.Score) string {
	badges := []string{
		styleBadge.Render(styleCorrect.Render(fmt.Sprintf("Correct: %d", s.Correct))),
		styleBadge.Render(fmt.Sprintf("Total: %d", s.Total)),
	}
	if acc, ok := s.Accuracy(); ok {
		badges = append(badges, styleBadge.Render(fmt.Sprintf("Accuracy: %d%% %s", s.Percent(), renderBar(acc, 20))))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, badges...)
}

func renderFeedback(fb drill.Feedback) string {
	if fb.IsCorrect {
		return styleCorrect.Render("Correct!")
	}
	given, expected := diffStrings(fb.Given, fb.Expected)
	return styleIncorrect.Render("Not quite.") +
		fmt.Sprintf("\nYour answer:    %s", given) +
		fmt.Sprintf("\nCorrect answer: %s", expected)
}

func renderBar(percentage float64, width int) string {
	greenCount := int(percentage * float64(width))
	redCount := width - greenCount
	return strings.Repeat(styleBarGreen.String(), greenCount) +
		strings.Repeat(styleBarRed.String(), redCount)
}

// diffStrings marks the runes where input and target differ, ignoring case.
func diffStrings(input, target string) (string, string) {
	var inputStyled, targetStyled strings.Builder
	runesInput := []rune(input)
	runesTarget := []rune(target)
	maxLen := max(len(runesInput), len(runesTarget))
	for i := 0; i < maxLen; i++ {
		inputInBounds := i < len(runesInput)
		targetInBounds := i < len(runesTarget)
		switch {
		case inputInBounds && targetInBounds:
			inputRune, targetRune := runesInput[i], runesTarget[i]
			if unicode.ToLower(inputRune) == unicode.ToLower(targetRune) {
				inputStyled.WriteRune(inputRune)
				targetStyled.WriteRune(targetRune)
			} else {
				inputStyled.WriteString(styleInputDiff.Render(string(inputRune)))
				targetStyled.WriteString(styleCorrectDiff.Render(string(targetRune)))
			}
		case inputInBounds:
			inputStyled.WriteString(styleInputDiff.Render(string(runesInput[i])))
		case targetInBounds:
			targetStyled.WriteString(styleCorrectDiff.Render(string(runesTarget[i])))
		}
	}
	return inputStyled.String(), targetStyled.String()
}
