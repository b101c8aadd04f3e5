// Package tui is an interactive stepping console for one history.Recorder.
// It renders the record under the cursor and maps keys to history navigation.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/history"
)

// headerLines is the height of the title and status lines above the viewport.
const headerLines = 2

// Model is the Bubble Tea model. The zero value is not usable; call New.
type Model struct {
	rec      *history.Recorder
	graph    *core.Graph
	limit    int
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	// seek is focused while the go-to-step prompt is open.
	seek textinput.Model
	err  error
}

// New returns a model driving rec. g is the graph the recorder was built
// from and is used only for rendering; limit bounds the run-to-end key
// (0 means unbounded).
func New(rec *history.Recorder, g *core.Graph, limit int) Model {
	ti := textinput.New()
	ti.Prompt = "go to step: "
	ti.Placeholder = "1"
	ti.CharLimit = 9
	ti.Width = 12

	m := Model{
		rec:      rec,
		graph:    g,
		limit:    limit,
		keys:     keys,
		help:     help.New(),
		viewport: viewport.New(80, 20),
		seek:     ti,
	}
	m.refresh()

	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		helpHeight := 2
		if m.help.ShowAll {
			helpHeight = 5
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerLines-helpHeight, 1)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.seek.Focused() {
			return m.updateSeek(msg)
		}
		m.err = nil
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.First):
			m.rec.First()
		case key.Matches(msg, m.keys.Prev):
			m.rec.Prev()
		case key.Matches(msg, m.keys.Next):
			m.rec.Next()
		case key.Matches(msg, m.keys.Last):
			m.rec.Last()
		case key.Matches(msg, m.keys.Seek):
			m.seek.SetValue("")
			cmd = m.seek.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Run):
			m.err = m.rec.RunToEnd(m.limit)
		case key.Matches(msg, m.keys.Reset):
			m.err = m.rec.Reset()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.refresh()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// updateSeek feeds keys to the open go-to-step prompt. Enter jumps to the
// typed 1-based step through Recorder.Seek; esc closes the prompt.
func (m Model) updateSeek(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.seek.Blur()
		return m, nil
	case tea.KeyEnter:
		m.seek.Blur()
		m.err = m.seekTo(m.seek.Value())
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.seek, cmd = m.seek.Update(msg)

	return m, cmd
}

func (m *Model) seekTo(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("go to step: %q is not a step number", input)
	}
	_, err = m.rec.Seek(n - 1)

	return err
}

func (m *Model) refresh() {
	m.viewport.SetContent(Snapshot(m.graph, m.rec.Current()))
	m.viewport.GotoTop()
}

// Status is the one-line cursor summary shown under the title.
func (m Model) Status() string {
	state := "running"
	if m.rec.Complete() {
		state = "complete"
	}

	return fmt.Sprintf("step %d/%d · %s", m.rec.Index()+1, m.rec.Len(), state)
}

func (m Model) View() string {
	title := titleStyle.Render(m.rec.Algorithm())
	status := m.Status()
	if m.err != nil {
		status += "  " + errorStyle.Render(m.err.Error())
	}
	if m.seek.Focused() {
		status += "  " + m.seek.View()
	}

	return title + "\n" + status + "\n" + m.viewport.View() + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the full-screen program and blocks until the user quits.
func Run(rec *history.Recorder, g *core.Graph, limit int) error {
	_, err := tea.NewProgram(New(rec, g, limit), tea.WithAltScreen()).Run()

	return err
}
