package selector

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run presents the candidates in a full-screen interactive list and
// blocks until the user confirms or cancels. An empty candidate list
// resolves to SelectionEmpty without entering interactive mode.
func Run(title string, items []Candidate, current string) (SelectionResult, error) {
	if len(items) == 0 {
		return SelectionResult{Kind: SelectionEmpty}, nil
	}

	program := tea.NewProgram(NewModel(title, items, current), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return SelectionResult{Kind: SelectionCancelled}, fmt.Errorf("selector failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Done() {
		return SelectionResult{Kind: SelectionCancelled}, nil
	}
	return m.Result(), nil
}
