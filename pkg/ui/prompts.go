// Package ui implements the interactive terminal prompts used by the setup
// and service-management commands.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted")

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)
)

type inputModel struct {
	label      string
	input      textinput.Model
	allowEmpty bool
	done       bool
	aborted    bool
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) != "" || m.allowEmpty {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n", labelStyle.Render(m.label), m.input.View())
}

// Input asks for a single line of text. The initial value is editable in
// place; an empty answer is only accepted when allowEmpty is set.
func Input(label, initial string, allowEmpty bool) (string, error) {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	m := inputModel{label: label, input: ti, allowEmpty: allowEmpty}

	res, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	final := res.(inputModel)
	if final.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(final.input.Value()), nil
}

type confirmModel struct {
	label   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.value = true
		m.done = true
		return m, tea.Quit
	case "n", "N":
		m.value = false
		m.done = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	hint := "y/N"
	if m.value {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s %s\n", labelStyle.Render(m.label), hintStyle.Render("("+hint+")"))
}

// Confirm asks a yes/no question; enter keeps the default.
func Confirm(label string, def bool) (bool, error) {
	res, err := tea.NewProgram(confirmModel{label: label, value: def}).Run()
	if err != nil {
		return false, err
	}
	final := res.(confirmModel)
	if final.aborted {
		return false, ErrAborted
	}
	return final.value, nil
}

type selectModel struct {
	label   string
	options []string
	cursor  int
	done    bool
	aborted bool
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	default:
		// Digit shortcuts, 1-based like everywhere else in the CLI.
		if n := int(key.String()[0] - '0'); len(key.String()) == 1 && n >= 1 && n <= len(m.options) {
			m.cursor = n - 1
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(labelStyle.Render(m.label))
	sb.WriteString("\n")
	for i, opt := range m.options {
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render(fmt.Sprintf("> %d) %s", i+1, opt)))
		} else {
			sb.WriteString(fmt.Sprintf("  %d) %s", i+1, opt))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(hintStyle.Render("up/down to move, enter to select"))
	sb.WriteString("\n")
	return sb.String()
}

// Select asks the user to pick one of options; returns the 0-based index.
func Select(label string, options []string, def int) (int, error) {
	if def < 0 || def >= len(options) {
		def = 0
	}
	res, err := tea.NewProgram(selectModel{label: label, options: options, cursor: def}).Run()
	if err != nil {
		return 0, err
	}
	final := res.(selectModel)
	if final.aborted {
		return 0, ErrAborted
	}
	return final.cursor, nil
}
