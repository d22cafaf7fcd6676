package corrgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/featprune/pkg/corr"
)

// DOTOptions configures correlation graph rendering.
type DOTOptions struct {
	// Groups draws each non-singleton group as a labelled cluster.
	Groups []Group
	// Kept marks features retained by selection (filled green).
	Kept []string
	// Removed marks features reported as removable (dashed, grey).
	Removed []string
	// Matrix, when set, labels edges with their absolute correlation.
	Matrix *corr.Matrix
	// HideIsolated omits features with no edges.
	HideIsolated bool
}

// ToDOT converts a correlation graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes and edges are emitted in sorted order so equal graphs produce
// byte-identical output.
func ToDOT(g *Graph, opts DOTOptions) string {
	kept := toSet(opts.Kept)
	removed := toSet(opts.Removed)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	clustered := make(map[string]bool)
	for i, gr := range opts.Groups {
		if gr.IsSingleton() {
			continue
		}
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("group %d", i+1))
		buf.WriteString("    style=dashed;\n")
		for _, m := range gr.Members {
			fmt.Fprintf(&buf, "    %q [%s];\n", m, strings.Join(nodeAttrs(m, kept, removed), ", "))
			clustered[m] = true
		}
		buf.WriteString("  }\n")
	}

	for _, n := range sortedNodes(g) {
		if clustered[n] || (opts.HideIsolated && !g.IsCorrelated(n)) {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n, strings.Join(nodeAttrs(n, kept, removed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if opts.Matrix != nil {
			if v, ok := opts.Matrix.Between(e.A, e.B); ok {
				fmt.Fprintf(&buf, "  %q -- %q [label=\"%.2f\"];\n", e.A, e.B, v)
				continue
			}
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(name string, kept, removed map[string]bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", name)}
	switch {
	case kept[name]:
		attrs = append(attrs, "fillcolor=palegreen", "penwidth=2")
	case removed[name]:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=gray30")
	}
	return attrs
}

func sortedNodes(g *Graph) []string {
	nodes := g.Nodes()
	slices.Sort(nodes)
	return nodes
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
