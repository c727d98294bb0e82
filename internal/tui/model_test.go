package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/HananMiftah/TweetClassifier/internal/config"
	"github.com/HananMiftah/TweetClassifier/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeClassifier struct {
	label string
	err   error
}

func (f *fakeClassifier) Classify(_ context.Context, _ *models.Dataset, req *models.ClassifyRequest) (*models.ClassifyReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClassifyReport{
		Kind:        models.RunKindKNN,
		Predictions: []models.Prediction{{Text: req.Query, Predicted: f.label}},
	}, nil
}

func (f *fakeClassifier) LexiconPredict(string) string { return f.label }

func testModel(engine Classifier) Model {
	ds := &models.Dataset{
		Name:      "tweets",
		Documents: []models.Document{{ID: "doc-1", Text: "x", Normalized: "x", Label: "positive"}},
	}
	cfg := config.AnalysisConfig{K: 3, Vote: "majority", Metric: "default"}
	return New(engine, ds, cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func TestModelClassifyFlow(t *testing.T) {
	m := testModel(&fakeClassifier{label: "positive"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m.input.SetValue("i love this")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with a query should produce a command")
	}
	msg, ok := cmd().(resultMsg)
	if !ok {
		t.Fatalf("command produced %T, want resultMsg", cmd())
	}
	if msg.entry.knn != "positive" || msg.entry.lexicon != "positive" {
		t.Errorf("result: %+v", msg.entry)
	}

	m, _ = update(t, m, msg)
	if len(m.history) != 1 {
		t.Fatalf("history: got %d entries", len(m.history))
	}
	view := m.View()
	for _, sub := range []string{"TweetClassifier", "i love this", "knn:", "lexicon:", "dataset=tweets"} {
		if !strings.Contains(view, sub) {
			t.Errorf("view missing %q:\n%s", sub, view)
		}
	}
}

func TestModelEmptyQueryIgnored(t *testing.T) {
	m := testModel(&fakeClassifier{label: "neutral"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m.input.SetValue("   ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank query should not produce a command")
	}
	if len(m.history) != 0 {
		t.Errorf("history: got %d entries", len(m.history))
	}
}

func TestModelClassifyError(t *testing.T) {
	m := testModel(&fakeClassifier{err: errors.New("boom")})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	m.input.SetValue("anything")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	m, _ = update(t, m, cmd())
	if !strings.Contains(m.status, "Error: boom") {
		t.Errorf("status: %q", m.status)
	}
	if len(m.history) != 0 {
		t.Errorf("history should stay empty on error, got %d", len(m.history))
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(&fakeClassifier{label: "neutral"})
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c produced %T, want tea.QuitMsg", cmd())
	}
}

func TestModelNotReady(t *testing.T) {
	m := testModel(&fakeClassifier{label: "neutral"})
	if m.View() != "Loading..." {
		t.Errorf("view before first resize: %q", m.View())
	}
}
