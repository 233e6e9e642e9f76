package tui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

type CancellationError struct{}

func (e *CancellationError) Error() string {
	return "operation cancelled"
}

type confirmModel struct {
	prompt    string
	cursor    int
	confirmed bool
	done      bool
	quitting  bool
}

func newConfirmModel(prompt string) confirmModel {
	// Cursor starts on No so a stray Enter never destroys anything.
	return confirmModel{prompt: prompt, cursor: 1}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "y", "Y":
			m.confirmed = true
			m.done = true
			return m, tea.Quit

		case "n", "N":
			m.done = true
			return m, tea.Quit

		case "enter":
			m.confirmed = m.cursor == 0
			m.done = true
			return m, tea.Quit

		case "up", "k", "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j", "right", "l":
			if m.cursor < 1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.prompt)
	s.WriteString("\n\n")

	options := []string{"✓ Yes", "✗ No"}
	for i, option := range options {
		cursor := "  "
		if m.cursor == i {
			cursor = primaryStyle.Render("▶ ")
		}
		if i == 0 {
			s.WriteString(fmt.Sprintf("%s%s\n", cursor, errorStyleTUI.Render(option)))
		} else {
			s.WriteString(fmt.Sprintf("%s%s\n", cursor, option))
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyleTUI.Render("↑/↓: Navigate  Enter: Confirm  Esc: Cancel"))
	s.WriteString("\n")

	return s.String()
}

// Confirm asks a yes/no question. On a real terminal it runs the arrow-key
// picker; on a pipe it falls back to a plain y/N line read so scripts can
// answer over stdin.
func Confirm(prompt string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return confirmPlain(os.Stdin, os.Stdout, prompt)
	}

	p := tea.NewProgram(newConfirmModel(prompt))
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error running TUI: %w", err)
	}

	result := finalModel.(confirmModel)
	if result.quitting {
		return false, &CancellationError{}
	}
	return result.confirmed, nil
}

func confirmPlain(in *os.File, out *os.File, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
