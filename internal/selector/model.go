package selector

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxVisibleItems caps how many candidates are rendered at once; the
// cursor scrolls the window when it moves past either edge.
const maxVisibleItems = 12

// Model is the selector state machine. All state transitions happen in
// Update and depend only on the incoming message and the current
// state, so tests can drive the model with synthetic key messages and
// assert on cursor, filter, and filtered view without a terminal.
type Model struct {
	title   string
	items   []Candidate
	current string // value of the entry marked as currently active

	filtered     []int // indices into items, original order preserved
	cursor       int   // position within filtered
	scrollOffset int   // first visible filtered index

	searching bool
	input     textinput.Model

	width  int
	height int

	done   bool
	result SelectionResult
}

// NewModel builds a selector over the given candidates. When current
// matches a candidate's value the cursor starts on that entry.
func NewModel(title string, items []Candidate, current string) Model {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "/ "
	input.CharLimit = 64

	m := Model{
		title:   title,
		items:   items,
		current: current,
		input:   input,
		width:   80,
		height:  24,
	}
	m.refilter()

	if current != "" {
		for i, idx := range m.filtered {
			if items[idx].Value == current {
				m.cursor = i
				break
			}
		}
		m.scrollToCursor()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It is the single place where selector
// state changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// ctrl+c cancels from any state, discarding filter and cursor.
		if msg.String() == "ctrl+c" {
			return m.cancel()
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNavigation(msg)
	}
	return m, nil
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.scrollToCursor()
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.scrollToCursor()
		}
	case "/":
		m.searching = true
		return m, m.input.Focus()
	case "enter":
		// Confirming with an empty filtered view is a no-op.
		if len(m.filtered) > 0 {
			m.done = true
			m.result = SelectionResult{
				Kind:      SelectionChosen,
				Candidate: m.items[m.filtered[m.cursor]],
			}
			return m, tea.Quit
		}
	case "q", "esc":
		return m.cancel()
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		// Leave search mode; the filter stays applied.
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.done = true
	m.result = SelectionResult{Kind: SelectionCancelled}
	return m, tea.Quit
}

// refilter recomputes the filtered view from the current query and
// resets the cursor to the top.
func (m *Model) refilter() {
	query := strings.ToLower(m.input.Value())
	m.filtered = m.filtered[:0]
	for i, item := range m.items {
		if query == "" || strings.Contains(strings.ToLower(item.Label), query) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.cursor = 0
	m.scrollOffset = 0
}

// scrollToCursor keeps the cursor inside the visible window.
func (m *Model) scrollToCursor() {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	maxVisibleIndex := m.scrollOffset + maxVisibleItems - 1
	if m.cursor > maxVisibleIndex {
		m.scrollOffset = m.cursor - maxVisibleItems + 1
	}
}

// Filtered returns the candidates currently matching the filter, in
// original order.
func (m Model) Filtered() []Candidate {
	view := make([]Candidate, 0, len(m.filtered))
	for _, idx := range m.filtered {
		view = append(view, m.items[idx])
	}
	return view
}

// Cursor returns the cursor position within the filtered view.
func (m Model) Cursor() int {
	return m.cursor
}

// Searching reports whether the selector is in search mode.
func (m Model) Searching() bool {
	return m.searching
}

// Filter returns the current filter string.
func (m Model) Filter() string {
	return m.input.Value()
}

// Done reports whether a result has been produced.
func (m Model) Done() bool {
	return m.done
}

// Result returns the selection outcome. Only meaningful once Done
// reports true.
func (m Model) Result() SelectionResult {
	return m.result
}
