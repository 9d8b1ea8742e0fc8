package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"textsum/internal/domain"
)

// FilePort is the TUI-facing subset of the summary service.
type FilePort interface {
	LoadText(path string) (string, error)
	SaveSummary(path, summary string) (string, error)
}

const (
	minPercent     = 10
	maxPercent     = 90
	stepPercent    = 5
	defaultPercent = 50
)

type focus int

const (
	focusEditor focus = iota
	focusControls
	focusPrompt
)

type promptKind int

const (
	promptLoad promptKind = iota
	promptSave
)

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	analyzer domain.Analyzer
	files    FilePort
	editor   textarea.Model
	prompt   textinput.Model
	viewport viewport.Model
	focus    focus
	pending  promptKind
	percent  int
	summary  string
	status   string
	ready    bool
}

// New creates a new TUI model instance with text preloaded in the editor.
func New(analyzer domain.Analyzer, files FilePort, text string, ratio float64) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type the text to summarize"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetValue(text)
	ta.Focus()

	ti := textinput.New()
	ti.CharLimit = 0

	return Model{
		analyzer: analyzer,
		files:    files,
		editor:   ta,
		prompt:   ti,
		viewport: viewport.New(0, 0),
		percent:  clampPercent(int(math.Round(ratio*100/stepPercent)) * stepPercent),
		status:   "tab: controls  ctrl+c: quit",
	}
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Ratio returns the current summary ratio.
func (m Model) Ratio() float64 { return float64(m.percent) / 100 }

// Summary returns the last generated summary.
func (m Model) Summary() string { return m.summary }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		w := max(20, msg.Width-boxStyle.GetHorizontalFrameSize())
		_, fh := boxStyle.GetFrameSize()
		// header, controls, status and the two box frames
		avail := max(6, msg.Height-3-2*fh)
		m.editor.SetWidth(w)
		m.editor.SetHeight(avail / 2)
		m.viewport.Width = w
		m.viewport.Height = avail - avail/2
		m.prompt.Width = w - 10
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.focus {
		case focusPrompt:
			return m.updatePrompt(msg)
		case focusControls:
			return m.updateControls(msg)
		}
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyEsc {
			m.focus = focusControls
			m.editor.Blur()
			m.status = "←/→ ratio  g: generate  o: load  s: save  c: clear  q: quit  tab: edit"
			return m, nil
		}
	}
	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
	case focusPrompt:
		m.prompt, cmd = m.prompt.Update(msg)
	}
	return m, cmd
}

func (m Model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "i":
		m.focus = focusEditor
		m.status = "tab: controls  ctrl+c: quit"
		return m, m.editor.Focus()
	case "q":
		return m, tea.Quit
	case "left", "-", "h":
		m.percent = clampPercent(m.percent - stepPercent)
	case "right", "+", "=", "l":
		m.percent = clampPercent(m.percent + stepPercent)
	case "g", "enter":
		m.generate()
	case "o":
		return m.openPrompt(promptLoad, "Load .txt file: ")
	case "s":
		if m.summary == "" {
			m.status = "Nothing to save yet."
			return m, nil
		}
		return m.openPrompt(promptSave, "Save summary to: ")
	case "c":
		m.editor.Reset()
		m.summary = ""
		m.percent = defaultPercent
		m.status = "Cleared."
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.viewport.SetContent(m.renderSummary())
	return m, nil
}

func (m Model) openPrompt(kind promptKind, label string) (tea.Model, tea.Cmd) {
	m.focus = focusPrompt
	m.pending = kind
	m.prompt.Prompt = label
	m.prompt.Reset()
	return m, m.prompt.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompt.Blur()
		m.focus = focusControls
		m.status = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.prompt.Value())
		m.prompt.Blur()
		m.focus = focusControls
		if path == "" {
			m.status = "Cancelled."
			return m, nil
		}
		switch m.pending {
		case promptLoad:
			text, err := m.files.LoadText(path)
			if err != nil {
				m.status = "Error: " + err.Error()
				return m, nil
			}
			m.editor.SetValue(text)
			m.status = fmt.Sprintf("Loaded %s", path)
		case promptSave:
			written, err := m.files.SaveSummary(path, m.summary)
			if err != nil {
				m.status = "Error: " + err.Error()
				return m, nil
			}
			m.status = fmt.Sprintf("Summary saved to %s", written)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) generate() {
	text := strings.TrimSpace(m.editor.Value())
	if text == "" {
		m.status = "Nothing to summarize."
		return
	}
	res, err := m.analyzer.Analyze(text, m.Ratio())
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		m.summary = ""
		m.status = "No sentences found: end sentences with '.', '!' or '?'."
	case err != nil:
		m.summary = ""
		m.status = "Error: " + err.Error()
	default:
		m.summary = res.Summary
		m.status = fmt.Sprintf("Kept %d of %d sentences (%d%%).", len(res.Selected), len(res.Sentences), m.percent)
	}
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Summarizer")
	input := boxStyle.Render(m.editor.View())
	controls := m.renderControls()
	output := boxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	if m.focus == focusPrompt {
		status = m.prompt.View()
	}
	return strings.Join([]string{header, input, controls, output, status}, "\n")
}

func (m Model) renderControls() string {
	const width = (maxPercent - minPercent) / stepPercent
	filled := (m.percent - minPercent) / stepPercent
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := fmt.Sprintf("Summary length %s %d%%", bar, m.percent)
	if m.focus == focusControls {
		return activeStyle.Render(label)
	}
	return label
}

func (m Model) renderSummary() string {
	if m.summary == "" {
		return mutedStyle.Render("No summary yet.")
	}
	return m.summary
}

var (
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func clampPercent(p int) int {
	if p < minPercent {
		return minPercent
	}
	if p > maxPercent {
		return maxPercent
	}
	return p
}
