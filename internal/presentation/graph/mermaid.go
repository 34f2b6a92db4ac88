package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/nfasim/pkg/domain"
)

// EpsilonLabel is the edge label drawn for epsilon transitions.
const EpsilonLabel = "ε"

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	// VisitedStates were active at some point of the run.
	VisitedStates []string
	// ActiveStates are active at the end of the run.
	ActiveStates []string
}

// OverlayFromResult marks every state active at any point of res as visited
// and the final active set as active.
func OverlayFromResult(a *domain.Automaton, initial domain.StateSet, res *domain.Result) *GraphOverlay {
	visited := initial.Clone()
	for _, snap := range res.Trace {
		visited.Union(snap.Active)
	}
	return &GraphOverlay{
		VisitedStates: a.LabelsOf(visited),
		ActiveStates:  a.LabelsOf(res.Final),
	}
}

// entryNode never clashes with state nodes, which are named s<N>.
const entryNode = "entry"

type edge struct {
	from, to domain.StateID
	epsilon  bool
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Start: ((Circle))
// - Accept: (((Double circle)))
// - Other states: (Rounded)
// An invisible entry node points at the start state, so the start stays marked
// when it is also accepting.
// Epsilon edges are dotted. Parallel edges between the same pair of states
// are merged into one edge with a comma-separated label.
// It also applies overlay styles (Visited/Active) if provided.
func GenerateMermaid(a *domain.Automaton, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for id := domain.StateID(0); int(id) < a.Len(); id++ {
		opener, closer := "(", ")"
		switch {
		case a.IsAccept(id):
			opener, closer = "(((", ")))"
		case id == a.Start():
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(id), opener, escape(a.Label(id)), closer)
	}
	fmt.Fprintf(&sb, "    %s[\" \"] --> %s\n", entryNode, nodeID(a.Start()))
	fmt.Fprintf(&sb, "    style %s fill:none,stroke:none\n", entryNode)

	var order []edge
	labels := make(map[edge][]string)
	for _, t := range a.Transitions() {
		from, _ := a.Lookup(t.From)
		to, _ := a.Lookup(t.To)
		e := edge{from: from, to: to, epsilon: t.Symbol == a.Epsilon()}
		if _, seen := labels[e]; !seen {
			order = append(order, e)
			labels[e] = nil
		}
		if !e.epsilon && !slices.Contains(labels[e], t.Symbol) {
			labels[e] = append(labels[e], t.Symbol)
		}
	}

	for _, e := range order {
		if e.epsilon {
			fmt.Fprintf(&sb, "    %s -. \"%s\" .-> %s\n", nodeID(e.from), EpsilonLabel, nodeID(e.to))
			continue
		}
		label := escape(strings.Join(labels[e], ", "))
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", nodeID(e.from), label, nodeID(e.to))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		active := make(map[string]bool, len(overlay.ActiveStates))
		for _, label := range overlay.ActiveStates {
			active[label] = true
		}
		styled := make(map[domain.StateID]bool)
		for _, label := range overlay.VisitedStates {
			id, ok := a.Lookup(label)
			if !ok || styled[id] || active[label] {
				continue
			}
			styled[id] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(id))
		}
		for _, label := range overlay.ActiveStates {
			if id, ok := a.Lookup(label); ok {
				fmt.Fprintf(&sb, "    class %s active;\n", nodeID(id))
			}
		}
	}

	return sb.String()
}

// nodeID keeps Mermaid identifiers independent of state labels, which may
// contain any character.
func nodeID(id domain.StateID) string {
	return fmt.Sprintf("s%d", id)
}

func escape(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
