package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkravec/rota/internal/domain"
)

type scheduleKeyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Quit     key.Binding
}

var scheduleKeys = scheduleKeyMap{
	PrevWeek: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous week"),
	),
	NextWeek: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next week"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "current week"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

type weekLoadedMsg struct{ week *weekData }
type weekErrMsg struct{ err error }

// scheduleModel is the interactive week view. It reloads the whole week
// whenever the cursor week changes.
type scheduleModel struct {
	app       *App
	operators []int64
	weekStart time.Time

	week    *weekData
	err     error
	loading bool
}

func newScheduleModel(app *App, operators []int64, weekStart time.Time) scheduleModel {
	return scheduleModel{
		app:       app,
		operators: operators,
		weekStart: weekStart,
		loading:   true,
	}
}

func (m scheduleModel) Init() tea.Cmd {
	return m.fetchWeek()
}

func (m scheduleModel) fetchWeek() tea.Cmd {
	app, operators, start := m.app, m.operators, m.weekStart
	return func() tea.Msg {
		week, err := loadWeek(context.Background(), app, operators, start)
		if err != nil {
			return weekErrMsg{err: err}
		}
		return weekLoadedMsg{week: week}
	}
}

func (m scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weekLoadedMsg:
		m.week = msg.week
		m.err = nil
		m.loading = false
		return m, nil

	case weekErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scheduleKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, scheduleKeys.PrevWeek):
			m.weekStart = m.weekStart.AddDate(0, 0, -7)
			m.loading = true
			return m, m.fetchWeek()
		case key.Matches(msg, scheduleKeys.NextWeek):
			m.weekStart = m.weekStart.AddDate(0, 0, 7)
			m.loading = true
			return m, m.fetchWeek()
		case key.Matches(msg, scheduleKeys.Today):
			m.weekStart = startOfWeek(m.app.now())
			m.loading = true
			return m, m.fetchWeek()
		}
	}

	return m, nil
}

func (m scheduleModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Week of %s", m.weekStart.Format(domain.DateLayout))
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("Loading..."))
	case m.err != nil:
		b.WriteString(absentStyle.Render("Error: " + m.err.Error()))
	default:
		b.WriteString(renderWeekGrid(m.week))
	}

	b.WriteString("\n")
	b.WriteString(legendStyle.Render("←/→ week · t today · q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderWeekGrid draws operators as rows and weekdays as columns.
func renderWeekGrid(week *weekData) string {
	var b strings.Builder

	header := []string{rowLabelCell.Render("operator")}
	for i := 0; i < 7; i++ {
		day := week.Start.AddDate(0, 0, i)
		header = append(header, cellStyle.Render(dimStyle.Render(day.Format("Mon 01-02"))))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, opID := range week.Operators {
		cells := week.Cells[opID]
		row := []string{rowLabelCell.Render(fmt.Sprintf("#%d", opID))}
		for i := 0; i < 7; i++ {
			row = append(row, cellStyle.Render(renderCell(cells[i])))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(c dayCell) string {
	switch {
	case c.Absence != nil:
		return absentStyle.Render(string(c.Absence.Status))
	case c.DayOff:
		return dayOffStyle.Render("day off")
	case len(c.Shifts) == 0:
		return dimStyle.Render("·")
	}
	spans := make([]string, 0, len(c.Shifts))
	for _, s := range c.Shifts {
		spans = append(spans, s.Start+"-"+s.End)
	}
	return shiftStyle.Render(strings.Join(spans, " "))
}

// renderWeekPlain is the non-TTY fallback: same data, no styling.
func renderWeekPlain(week *weekData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Week of %s\n", week.Start.Format(domain.DateLayout))
	for _, opID := range week.Operators {
		cells := week.Cells[opID]
		fmt.Fprintf(&b, "operator %d:\n", opID)
		for i := 0; i < 7; i++ {
			day := week.Start.AddDate(0, 0, i)
			c := cells[i]
			var text string
			switch {
			case c.Absence != nil:
				text = string(c.Absence.Status)
			case c.DayOff:
				text = "day off"
			case len(c.Shifts) == 0:
				text = "-"
			default:
				spans := make([]string, 0, len(c.Shifts))
				for _, s := range c.Shifts {
					spans = append(spans, s.Start+"-"+s.End+" breaks: "+formatBreaks(s.Breaks))
				}
				text = strings.Join(spans, "; ")
			}
			fmt.Fprintf(&b, "  %s  %s\n", day.Format(domain.DateLayout), text)
		}
	}

	return b.String()
}
