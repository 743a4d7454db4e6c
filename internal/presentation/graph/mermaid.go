package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/notequiz/pkg/domain"
)

// GraphOverlay contains session state to visualize on the graph.
type GraphOverlay struct {
	VisitedViews []domain.View
	CurrentView  domain.View
}

// GenerateMermaid produces a Mermaid flowchart of the view transitions.
// Shapes: Home is a circle, Loading a subroutine, other views rectangles.
// Guarded transitions (dashboard shortcuts) are drawn dotted.
func GenerateMermaid(transitions []domain.Transition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, v := range domain.Views {
		opener, closer := "[", "]"
		switch v {
		case domain.ViewHome:
			opener, closer = "((", "))"
		case domain.ViewLoading:
			opener, closer = "[[", "]]"
		}
		label := string(v)
		if status, ok := v.StatusLabel(); ok {
			label = fmt.Sprintf("%s <br/> %s", v, status)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(string(v)), opener, label, closer)
	}

	for _, t := range transitions {
		trigger := strings.ReplaceAll(t.Trigger, "\"", "'")
		arrow := fmt.Sprintf("-- \"%s\" -->", trigger)
		if t.Guarded {
			arrow = fmt.Sprintf("-. \"%s\" .->", trigger)
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(string(t.From)), arrow, sanitizeMermaidID(string(t.To)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, v := range overlay.VisitedViews {
			id := sanitizeMermaidID(string(v))
			if id != "" && !seen[id] {
				seen[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", id)
			}
		}

		if overlay.CurrentView != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentView)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
