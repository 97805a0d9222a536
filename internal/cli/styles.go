package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeader = lipgloss.Color("208")
	colorGreen  = lipgloss.Color("114")
	colorFg     = lipgloss.Color("252")
	colorDim    = lipgloss.Color("243")
	colorRed    = lipgloss.Color("203")
	colorBlue   = lipgloss.Color("75")
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
	shiftStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	absentStyle  = lipgloss.NewStyle().Foreground(colorRed)
	dayOffStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	cellStyle    = lipgloss.NewStyle().Width(14)
	legendStyle  = lipgloss.NewStyle().Foreground(colorDim).MarginTop(1)
	rowLabelCell = lipgloss.NewStyle().Foreground(colorFg).Width(10)
)

func rotaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(colorFg).Background(colorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}
