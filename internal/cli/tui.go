package cli

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/featprune/pkg/corr"
	"github.com/matzehuels/featprune/pkg/pipeline"
	"github.com/matzehuels/featprune/pkg/selection"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// GroupListModel - Interactive group browser
// =============================================================================

// GroupListModel is the bubbletea model for browsing correlated groups.
// The left pane lists the groups; the right pane shows the members of the
// group under the cursor with their scores and the correlation to the
// group's best member.
type GroupListModel struct {
	Decisions []selection.Decision
	Matrix    *corr.Matrix
	Criterion selection.Criterion
	Cursor    int
	Height    int
	Offset    int
}

// newGroupListModel creates a group browser over the multi-member groups of res.
func newGroupListModel(res *pipeline.Result) GroupListModel {
	return GroupListModel{
		Decisions: res.Selection.Decisions,
		Matrix:    res.Matrix,
		Criterion: res.Selection.Criterion,
		Height:    15,
	}
}

func (m GroupListModel) Init() tea.Cmd {
	return nil
}

func (m GroupListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Decisions)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.Decisions)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m GroupListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Correlated Groups"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	var list strings.Builder
	end := min(m.Offset+m.Height, len(m.Decisions))
	for i := m.Offset; i < end; i++ {
		d := m.Decisions[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-4d %2d members  %s", cursor, i+1, d.Group.Size(), strings.Join(d.Kept, ", "))
		if i == m.Cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	detail := ""
	if len(m.Decisions) > 0 {
		detail = detailBoxStyle.Render(m.detailView(m.Decisions[m.Cursor]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", detail))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Decisions))))

	return b.String()
}

// detailView lists the members of a group: kept ones first in rank order,
// then removed ones, each with its score and its correlation to the top
// kept member.
func (m GroupListModel) detailView(d selection.Decision) string {
	scores := make(map[string]float64, len(d.Ranking))
	for _, r := range d.Ranking {
		scores[r.Feature] = r.Score
	}
	var anchor string
	if len(d.Ranking) > 0 {
		anchor = d.Ranking[0].Feature
	} else if len(d.Kept) > 0 {
		anchor = d.Kept[0]
	}

	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-20s %10s %8s", "feature", m.Criterion, "|r|")))
	b.WriteString("\n")
	for _, f := range memberOrder(d) {
		score := "—"
		if s, ok := scores[f]; ok && !math.IsNaN(s) {
			score = fmt.Sprintf("%.4g", s)
		}
		r := "—"
		if f != anchor && m.Matrix != nil {
			if v, ok := m.Matrix.Between(f, anchor); ok && !math.IsNaN(v) {
				r = fmt.Sprintf("%.3f", v)
			}
		}
		icon, style := iconRemoved, StyleRemoved
		if slices.Contains(d.Kept, f) {
			icon, style = iconKept, StyleKept
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %-18s", icon, f)))
		b.WriteString(fmt.Sprintf(" %10s %8s\n", score, r))
	}
	return strings.TrimRight(b.String(), "\n")
}

// memberOrder returns the group members in rank order when the group was
// ranked, otherwise kept members followed by removed ones.
func memberOrder(d selection.Decision) []string {
	if len(d.Ranking) > 0 {
		out := make([]string, len(d.Ranking))
		for i, r := range d.Ranking {
			out[i] = r.Feature
		}
		return out
	}
	return append(slices.Clone(d.Kept), d.Removed...)
}
