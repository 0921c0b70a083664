package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

const animalsPerRow = 10

// quizView renders a multiple-choice round.
func (m PlayModel) quizView() string {
	st := m.sess.Snapshot()

	var b strings.Builder
	b.WriteString(m.hud(st))
	b.WriteString("\n\n")

	if st.Problem != nil {
		b.WriteString(m.theme.Question.Render(st.Problem.Display.Question))
		b.WriteString("\n")
		if pic := m.picture(st.Problem); pic != "" {
			b.WriteString(pic)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(m.optionRow(st))
	b.WriteString("\n")
	if st.Problem != nil && st.Problem.Mode.IsNumeric() && st.Phase == session.PhaseActive {
		b.WriteString(m.theme.HUDLabel.Render("Type an answer: "))
		b.WriteString(m.theme.Entry.Render(m.entry.String() + "_"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.feedback(st))
	b.WriteString("\n")
	b.WriteString(m.footer(st))

	return m.center(b.String())
}

// bubbleView renders a sequence round.
func (m PlayModel) bubbleView() string {
	st := m.sess.Snapshot()

	var b strings.Builder
	b.WriteString(m.hud(st))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Question.Render(bubbleHint(st.Mode)))
	b.WriteString("\n")

	remaining := m.sess.Remaining()
	bubbles := make([]string, 0, len(remaining))
	for i, n := range remaining {
		style := m.theme.Bubble
		if i == m.cursor && st.Phase == session.PhaseActive {
			style = m.theme.BubbleActive
		}
		bubbles = append(bubbles, style.Render(fmt.Sprintf("%2d", n)))
	}
	b.WriteString(wrapBlocks(bubbles, max(m.width-4, 20)))
	b.WriteString("\n")

	if st.Problem != nil && st.Problem.Sequence != nil {
		b.WriteString(m.theme.HUDLabel.Render(fmt.Sprintf("Popped %d of %d", st.Progress.Count(), st.Problem.Sequence.Len())))
		b.WriteString("\n")
	}
	if st.Phase == session.PhaseActive {
		b.WriteString(m.theme.HUDLabel.Render("Type a number: "))
		b.WriteString(m.theme.Entry.Render(m.entry.String() + "_"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.feedback(st))
	b.WriteString("\n")
	b.WriteString(m.footer(st))

	return m.center(b.String())
}

func bubbleHint(mode problem.Mode) string {
	switch mode {
	case problem.Ascending:
		return "Pop the bubbles from smallest to biggest!"
	case problem.Descending:
		return "Pop the bubbles from biggest to smallest!"
	case problem.EvenFilter:
		return "Pop all the even numbers!"
	case problem.OddFilter:
		return "Pop all the odd numbers!"
	default:
		return mode.Label()
	}
}

// hud shows the title, level, score, lives and timer.
func (m PlayModel) hud(st session.State) string {
	params := m.sess.Params()
	parts := []string{
		m.theme.Title.Render(m.game.Title()),
		m.stat("Mode", st.Mode.Label()),
		m.stat("Level", fmt.Sprintf("%d %s", params.Level, params.Name)),
		m.stat("Score", fmt.Sprintf("%d", st.Score)),
	}

	rules := m.sess.Rules()
	if rules.Lives > 0 {
		hearts := strings.Repeat("♥", st.Lives) + strings.Repeat("♡", max(rules.Lives-st.Lives, 0))
		parts = append(parts, m.theme.Lives.Render(hearts))
	}
	if rules.Timed() {
		parts = append(parts, m.stat("Time", fmt.Sprintf("%ds", st.TimeLeft)))
	}
	if st.Streak.Correct > 0 {
		parts = append(parts, m.theme.Correct.Render(strings.Repeat("★", st.Streak.Correct)))
	}

	return strings.Join(parts, m.theme.Dim.Render("  │  "))
}

func (m PlayModel) stat(label, value string) string {
	return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(value)
}

// picture draws the animals a farm question is about.
func (m PlayModel) picture(p *problem.Problem) string {
	d := p.Display
	switch p.Mode {
	case problem.Counting, problem.Grouping:
		if len(d.Animals) == 0 || len(d.Counts) == 0 {
			return ""
		}
		return animalRows(d.Animals[0].Emoji, d.Counts[0])

	case problem.Comparing:
		if len(d.Animals) < 2 || len(d.Counts) < 2 {
			return ""
		}
		left := animalRows(d.Animals[0].Emoji, d.Counts[0])
		right := animalRows(d.Animals[1].Emoji, d.Counts[1])
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.theme.Option.Render(left), "   ", m.theme.Option.Render(right))

	case problem.Sharing:
		if len(d.Animals) == 0 {
			return ""
		}
		pens := strings.TrimSpace(strings.Repeat("[   ] ", d.Groups))
		return animalRows(d.Animals[0].Emoji, d.Total) + "\n\n" + m.theme.HUDLabel.Render(pens)
	}
	return ""
}

func animalRows(emoji string, n int) string {
	var rows []string
	for n > 0 {
		k := min(n, animalsPerRow)
		rows = append(rows, strings.TrimSpace(strings.Repeat(emoji+" ", k)))
		n -= k
	}
	return strings.Join(rows, "\n")
}

// optionRow renders the answer set with the cursor.
func (m PlayModel) optionRow(st session.State) string {
	opts := m.sess.Options()
	blocks := make([]string, 0, len(opts))
	for i, o := range opts {
		style := m.theme.Option
		if i == m.cursor && st.Phase == session.PhaseActive {
			style = m.theme.OptionActive
		}
		if st.Phase != session.PhaseActive && o.Correct {
			style = style.BorderForeground(m.theme.Correct.GetForeground())
		}
		blocks = append(blocks, style.Render(optionLabel(o.Value)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func optionLabel(a problem.Answer) string {
	if a.IsNumber() {
		return a.String()
	}
	if animal, ok := problem.AnimalByName(a.String()); ok {
		return animal.Emoji + " " + animal.Plural
	}
	switch a.String() {
	case problem.TokenSame:
		return "the same"
	case problem.TokenOdd:
		return "odd"
	case problem.TokenEven:
		return "even"
	}
	return a.String()
}

// feedback describes the last answer and any level change.
func (m PlayModel) feedback(st session.State) string {
	if st.Phase == session.PhaseGameOver {
		return m.gameOver(st)
	}
	if m.last == nil {
		return ""
	}

	var lines []string
	if m.last.Correct {
		lines = append(lines, m.theme.Correct.Render("✓ "+m.cheer))
	} else {
		msg := "✗ " + m.cheer
		if !m.last.CorrectAnswer.IsZero() && !st.Mode.IsSequence() {
			msg += fmt.Sprintf(" The answer was %s.", optionLabel(m.last.CorrectAnswer))
		}
		lines = append(lines, m.theme.Wrong.Render(msg))
	}

	if m.last.LevelChanged {
		params := m.sess.Params()
		word := "Level up!"
		if m.last.Direction == level.Down {
			word = "Let's try an easier level."
		}
		lines = append(lines, m.theme.LevelUp.Render(fmt.Sprintf("%s Now on level %d: %s", word, params.Level, params.Name)))
	}
	if m.last.RoundComplete {
		lines = append(lines, m.theme.LevelUp.Render("Round complete!"))
	}
	return strings.Join(lines, "\n")
}

func (m PlayModel) gameOver(st session.State) string {
	title := "Game Over"
	if m.sess.Rules().Timed() && st.TimeLeft == 0 {
		title = "Time's Up!"
	}
	body := fmt.Sprintf("%s\n\nScore: %d\nLevel: %d", title, st.Score, st.Level)
	return m.theme.Overlay.Render(body)
}

func (m PlayModel) footer(st session.State) string {
	keys := m.keys.playHelp()
	if st.Phase == session.PhaseGameOver {
		keys = m.keys.gameOverHelp()
	}
	return m.help.View(keys)
}

func (m PlayModel) center(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// wrapBlocks joins rendered blocks horizontally, starting a new line when
// width would be exceeded.
func wrapBlocks(blocks []string, width int) string {
	var lines []string
	var row []string
	rowWidth := 0
	for _, blk := range blocks {
		w := lipgloss.Width(blk)
		if rowWidth > 0 && rowWidth+w > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, blk)
		rowWidth += w
	}
	if len(row) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(lines, "\n")
}
