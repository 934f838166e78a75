// Package tui provides the interactive prompt for the divisibility checker.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pdxmph/todo/internal/divisibility"
)

// Styles
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	resultStyle = lipgloss.NewStyle().
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

// Model is the state of the number prompt
type Model struct {
	input     textinput.Model
	invalid   bool
	done      bool
	aborted   bool
	divisible bool
}

// New creates a focused prompt
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "121"
	ti.Prompt = divisibility.PromptText
	ti.PromptStyle = promptStyle
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return Model{input: ti}
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			n, err := divisibility.ParseInteger(m.input.Value())
			if err != nil {
				m.invalid = true
				m.input.Reset()
				return m, nil
			}
			m.invalid = false
			m.done = true
			m.divisible = divisibility.DivisibleBy11(n)
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt, or the result once an integer was entered
func (m Model) View() string {
	if m.done {
		return resultStyle.Render(divisibility.Message(m.divisible)) + "\n"
	}
	if m.aborted {
		return ""
	}

	var lines []string
	if m.invalid {
		lines = append(lines, errorStyle.Render(divisibility.InvalidText))
	}
	lines = append(lines, m.input.View())
	lines = append(lines, helpStyle.Render("enter: check • esc: quit"))
	return strings.Join(lines, "\n") + "\n"
}

// Result reports whether an integer was entered and, if so, whether it is
// divisible by 11
func (m Model) Result() (divisible, ok bool) {
	return m.divisible, m.done
}
