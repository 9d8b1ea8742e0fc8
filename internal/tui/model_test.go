package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/summarizer"
	"textsum/internal/tui"
)

type fakeFiles struct {
	texts map[string]string
	saved map[string]string
}

func (f *fakeFiles) LoadText(path string) (string, error) {
	text, ok := f.texts[path]
	if !ok {
		return "", errors.New("failed to load file")
	}
	return text, nil
}

func (f *fakeFiles) SaveSummary(path, summary string) (string, error) {
	f.saved[path+".txt"] = summary
	return path + ".txt", nil
}

func newModel(t *testing.T, text string, ratio float64) (tui.Model, *fakeFiles) {
	t.Helper()
	sum, err := summarizer.New()
	require.NoError(t, err)
	files := &fakeFiles{
		texts: map[string]string{"pets.txt": "Cats are mammals. Dogs are mammals too. The sky is blue."},
		saved: map[string]string{},
	}
	m := tui.New(sum, files, text, ratio)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30}), files
}

func send(t *testing.T, m tui.Model, msgs ...tea.Msg) tui.Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(tui.Model)
		require.True(t, ok)
	}
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestRatioControls(t *testing.T) {
	m, _ := newModel(t, "", 0.5)
	assert.Equal(t, 0.5, m.Ratio())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight}, key("+"))
	assert.Equal(t, 0.6, m.Ratio())

	for i := 0; i < 20; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, 0.1, m.Ratio())
	assert.Contains(t, m.View(), "10%")

	for i := 0; i < 20; i++ {
		m = send(t, m, key("+"))
	}
	assert.Equal(t, 0.9, m.Ratio())
}

func TestGenerate(t *testing.T) {
	m, _ := newModel(t, "Cats are mammals. Dogs are mammals too. The sky is blue.", 0.34)
	assert.Equal(t, 0.35, m.Ratio())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, key("g"))
	assert.Equal(t, "Cats are mammals.", m.Summary())
	assert.Contains(t, m.View(), "Kept 1 of 3 sentences")
}

func TestGenerateNoSentences(t *testing.T) {
	m, _ := newModel(t, "hello world", 0.5)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, key("g"))
	assert.Empty(t, m.Summary())
	assert.Contains(t, m.View(), "No sentences found")
}

func TestLoadAndSave(t *testing.T) {
	m, files := newModel(t, "", 0.3)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, key("s"))
	assert.Contains(t, m.View(), "Nothing to save yet.")

	m = send(t, m, key("o"))
	m = send(t, m, typeText("pets.txt")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Loaded pets.txt")

	m = send(t, m, key("g"), key("s"))
	m = send(t, m, typeText("out")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Cats are mammals.", files.saved["out.txt"])
	assert.Contains(t, m.View(), "Summary saved to out.txt")

	m = send(t, m, key("o"))
	m = send(t, m, typeText("missing.txt")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Error: failed to load file")
}

func TestClearResetsRatio(t *testing.T) {
	m, _ := newModel(t, "One. Two.", 0.8)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, key("g"), key("c"))

	assert.Equal(t, 0.5, m.Ratio())
	assert.Empty(t, m.Summary())
	assert.Contains(t, m.View(), "No summary yet.")
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, "", 0.5)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
