package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

const sampleCSV = `A,B,C,D
1,1,4,1
2,2,5,1
3,1,6,1
4,2,7,1
`

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and an isolated config home.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"prune", "groups", "graph", "matrix", "version"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing subcommand %q (have %v)", want, names)
		}
	}
}

func TestPruneJSON(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.csv", sampleCSV)
	scores := writeFile(t, dir, "scores.json", `{"A": 0.5, "B": 0.3, "C": 0.7, "D": 0.2}`)

	out, err := execute(t, "prune", data, "--threshold", "0.8", "--by", "importance", "--importance", scores, "-f", "json")
	if err != nil {
		t.Fatalf("prune error = %v", err)
	}

	var rep pruneReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if !slices.Equal(rep.Remove, []string{"A"}) || !slices.Equal(rep.Kept, []string{"C"}) {
		t.Errorf("remove = %v, kept = %v", rep.Remove, rep.Kept)
	}
	if rep.By != "importance" || rep.Threshold != 0.8 || rep.NSelect != 1 {
		t.Errorf("report settings = %q/%v/%d", rep.By, rep.Threshold, rep.NSelect)
	}
	if len(rep.Groups) != 1 || !slices.Equal(rep.Groups[0].Members, []string{"A", "C"}) {
		t.Fatalf("groups = %+v", rep.Groups)
	}
	if got := rep.Groups[0].Scores["C"]; math.Abs(got-0.7) > 1e-12 {
		t.Errorf("score C = %v, want 0.7", got)
	}
}

func TestPruneTextToFile(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.csv", sampleCSV)
	dest := filepath.Join(dir, "removed.txt")

	out, err := execute(t, "prune", data, "--threshold", "0.8", "-o", dest)
	if err != nil {
		t.Fatalf("prune error = %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "C\n" {
		t.Errorf("file = %q, want %q", got, "C\n")
	}
	if !strings.Contains(out, "remove") || !strings.Contains(out, dest) {
		t.Errorf("stdout = %q", out)
	}
}

func TestPruneThresholdAndNSelect(t *testing.T) {
	data := writeFile(t, t.TempDir(), "data.csv", sampleCSV)
	out, err := execute(t, "prune", data, "--threshold", "0.99", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var rep pruneReport
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatal(err)
	}
	// A and C correlate at exactly 1, above 0.99.
	if !slices.Equal(rep.Remove, []string{"C"}) {
		t.Errorf("remove = %v", rep.Remove)
	}

	out, err = execute(t, "prune", data, "--n-select", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No redundant features") {
		t.Errorf("stdout = %q", out)
	}
}

func TestPruneErrors(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.csv", sampleCSV)
	partial := writeFile(t, dir, "scores.toml", "A = 0.5\n")
	infinite := writeFile(t, dir, "scores.csv", "feature,score\nA,0.5\nB,0.3\nC,+Inf\nD,0.2\n")

	tests := []struct {
		name string
		args []string
		code ferrors.Code
	}{
		{"unknown criterion", []string{"prune", data, "--by", "mean"}, ferrors.ErrCodeInvalidArgument},
		{"importance without file", []string{"prune", data, "--by", "importance"}, ferrors.ErrCodeConfiguration},
		{"missing importance entry", []string{"prune", data, "--by", "importance", "--importance", partial, "--threshold", "0.8"}, ferrors.ErrCodeMissingImportance},
		{"infinite importance", []string{"prune", data, "--by", "importance", "--importance", infinite, "-f", "json"}, ferrors.ErrCodeInvalidInput},
		{"threshold out of range", []string{"prune", data, "--threshold", "1.5"}, ferrors.ErrCodeInvalidArgument},
		{"bad format", []string{"prune", data, "-f", "xml"}, ferrors.ErrCodeInvalidArgument},
		{"missing config", []string{"prune", data, "--config", filepath.Join(dir, "nope.toml")}, ferrors.ErrCodeConfiguration},
		{"missing data", []string{"prune", filepath.Join(dir, "nope.csv")}, ferrors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !ferrors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestGroupsTable(t *testing.T) {
	data := writeFile(t, t.TempDir(), "data.csv", sampleCSV)
	out, err := execute(t, "groups", data, "--threshold", "0.8")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Correlated groups", "Kept", "Removed", "A", "C"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGroupsNoneAboveThreshold(t *testing.T) {
	data := writeFile(t, t.TempDir(), "data.csv", "x,y\n1,2\n2,1\n3,4\n4,3\n5,6\n")
	out, err := execute(t, "groups", data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No feature pair exceeds threshold 0.90") {
		t.Errorf("output = %q", out)
	}
}

func TestGraphDOT(t *testing.T) {
	data := writeFile(t, t.TempDir(), "data.csv", sampleCSV)
	out, err := execute(t, "graph", data, "--threshold", "0.8", "--hide-isolated")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "graph G {") || !strings.Contains(out, `"A" -- "C"`) {
		t.Errorf("DOT output:\n%s", out)
	}
	if strings.Contains(out, `"D"`) {
		t.Errorf("isolated feature D should be hidden:\n%s", out)
	}
}

func TestResolveGraphType(t *testing.T) {
	tests := []struct {
		explicit, output string
		want             string
		wantErr          bool
	}{
		{"", "", graphTypeDOT, false},
		{"", "out.SVG", graphTypeSVG, false},
		{"", "out.dot", graphTypeDOT, false},
		{"svg", "out.dot", graphTypeSVG, false},
		{"png", "", "", true},
	}
	for _, tt := range tests {
		got, err := resolveGraphType(tt.explicit, tt.output)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("resolveGraphType(%q, %q) = %q, %v", tt.explicit, tt.output, got, err)
		}
	}
}

func TestMatrixPairsJSON(t *testing.T) {
	data := writeFile(t, t.TempDir(), "data.csv", sampleCSV)
	out, err := execute(t, "matrix", data, "--pairs", "--threshold", "0.8", "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var pairs []struct {
		A, B  string
		Value float64
	}
	if err := json.Unmarshal([]byte(out), &pairs); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(pairs) != 1 || pairs[0].A != "A" || pairs[0].B != "C" || math.Abs(pairs[0].Value-1) > 1e-9 {
		t.Errorf("pairs = %+v", pairs)
	}
}

func TestMatrixJSONEncodesNaNAsNull(t *testing.T) {
	data := writeFile(t, t.TempDir(), "data.csv", sampleCSV)
	out, err := execute(t, "matrix", data, "-f", "json")
	if err != nil {
		t.Fatal(err)
	}
	var rep struct {
		Features []string
		Values   [][]*float64
	}
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatal(err)
	}
	if len(rep.Features) != 4 || rep.Values[0][3] != nil || rep.Values[3][3] == nil {
		t.Errorf("matrix = %s", out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatal(err)
	}
	if info["version"] == "" || info["go_version"] == "" {
		t.Errorf("version info = %v", info)
	}
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "featprune") {
		t.Error("bash completion should mention the program name")
	}
}
