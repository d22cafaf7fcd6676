package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/featprune/pkg/frame"
	"github.com/matzehuels/featprune/pkg/pipeline"
)

func sampleGroupModel(t *testing.T) GroupListModel {
	t.Helper()
	tbl := frame.NewTable()
	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"a", []float64{1, 2, 3, 4, 5}},
		{"b", []float64{2, 4, 6, 8, 11}},
		{"c", []float64{5, 1, 4, 2, 3}},
		{"d", []float64{10, 2, 8, 4, 6}},
	} {
		if err := tbl.AddColumn(col.name, col.values); err != nil {
			t.Fatal(err)
		}
	}
	res, err := pipeline.NewRunner(nil).Run(context.Background(), tbl, pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return newGroupListModel(res)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGroupListModelNavigation(t *testing.T) {
	m := sampleGroupModel(t)
	if len(m.Decisions) != 2 {
		t.Fatalf("decisions = %d, want 2", len(m.Decisions))
	}

	next, _ := m.Update(key("j"))
	m = next.(GroupListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after j = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(key("j"))
	m = next.(GroupListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor should stop at last group, got %d", m.Cursor)
	}

	next, _ = m.Update(key("k"))
	m = next.(GroupListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor after k = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(key("G"))
	m = next.(GroupListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after G = %d, want 1", m.Cursor)
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestGroupListModelWindowSize(t *testing.T) {
	m := sampleGroupModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if got := next.(GroupListModel).Height; got != 5 {
		t.Errorf("Height = %d, want 5", got)
	}
}

func TestGroupListModelView(t *testing.T) {
	m := sampleGroupModel(t)
	view := m.View()
	for _, want := range []string{"Correlated Groups", "variance", "[1/2]", "a", "b"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
