package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/notequiz/internal/presentation/graph"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		transitions []domain.Transition
		contains    []string
	}{
		{
			name: "View Shapes",
			contains: []string{
				`home(("home <br/> Dashboard"))`,
				`loading[["loading"]]`,
				`summary["summary <br/> Summary"]`,
				`quiz["quiz <br/> Practice Quiz"]`,
			},
		},
		{
			name: "Solid And Guarded Edges",
			transitions: []domain.Transition{
				{From: domain.ViewHome, To: domain.ViewLoading, Trigger: "summarize"},
				{From: domain.ViewHome, To: domain.ViewQuiz, Trigger: "quiz card", Guarded: true},
			},
			contains: []string{
				`home -- "summarize" --> loading`,
				`home -. "quiz card" .-> quiz`,
			},
		},
		{
			name: "Trigger Escaping",
			transitions: []domain.Transition{
				{From: domain.ViewQuiz, To: domain.ViewHome, Trigger: `say "restart"`},
			},
			contains: []string{
				`quiz -- "say 'restart'" --> home`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.transitions, nil)
			assert.True(t, strings.HasPrefix(got, "graph TD\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_FullTable(t *testing.T) {
	got := graph.GenerateMermaid(domain.Transitions(), nil)
	edges := strings.Count(got, "-->") + strings.Count(got, ".->")
	assert.Equal(t, len(domain.Transitions()), edges)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	overlay := &graph.GraphOverlay{
		VisitedViews: []domain.View{domain.ViewHome, domain.ViewLoading, domain.ViewHome, domain.ViewSummary},
		CurrentView:  domain.ViewSummary,
	}

	got := graph.GenerateMermaid(nil, overlay)
	assert.Equal(t, 1, strings.Count(got, "class home visited;"))
	assert.Contains(t, got, "class loading visited;")
	assert.Contains(t, got, "class summary current;")
}
