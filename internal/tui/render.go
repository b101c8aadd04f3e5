package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvstep/algorithm"
	"github.com/katalvlaran/lvstep/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	plainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	descStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

// Mark symbols for one node or edge line.
const (
	markCurrent     = "▶"
	markHighlighted = "●"
	markPlain       = "·"
)

func mark(current, highlighted bool) (string, lipgloss.Style) {
	switch {
	case current:
		return markCurrent, currentStyle
	case highlighted:
		return markHighlighted, highlightStyle
	default:
		return markPlain, plainStyle
	}
}

func set(ids []string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}

	return m
}

// formatValue prints integral values without a fractional part.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Snapshot renders one record against g as text: a node block, an edge block
// and the step description. Styles degrade to plain text when the terminal
// has no colour profile.
func Snapshot(g *core.Graph, rec algorithm.StepRecord) string {
	st := rec.State
	curN, hiN := set(st.CurrentNodes), set(st.HighlightedNodes)
	curE, hiE := set(st.CurrentEdges), set(st.HighlightedEdges)

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Nodes"))
	b.WriteByte('\n')
	for _, n := range g.Nodes() {
		sym, style := mark(curN[n.ID], hiN[n.ID])
		line := fmt.Sprintf("%s %-8s (%g, %g)", sym, n.ID, n.X, n.Y)
		if v, ok := st.NodeValues[n.ID]; ok {
			line += " = " + formatValue(v)
		}
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}

	b.WriteString(sectionStyle.Render("Edges"))
	b.WriteByte('\n')
	arrow := "—"
	if g.Directed() {
		arrow = "→"
	}
	for _, e := range g.Edges() {
		sym, style := mark(curE[e.ID], hiE[e.ID])
		line := fmt.Sprintf("%s %-8s %s %s %s", sym, e.ID, e.Source.ID, arrow, e.Target.ID)
		if e.HasWeight() {
			line += " w=" + formatValue(*e.Weight)
		}
		b.WriteString(style.Render(line))
		b.WriteByte('\n')
	}

	b.WriteString(descStyle.Render(rec.Description))

	return b.String()
}
