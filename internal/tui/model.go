// Package tui provides an interactive terminal session: type a tweet,
// see the KNN and lexicon predictions side by side.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/HananMiftah/TweetClassifier/internal/config"
	"github.com/HananMiftah/TweetClassifier/internal/lexicon"
	"github.com/HananMiftah/TweetClassifier/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Classifier is the TUI-facing subset of the analysis engine.
type Classifier interface {
	Classify(ctx context.Context, ds *models.Dataset, req *models.ClassifyRequest) (*models.ClassifyReport, error)
	LexiconPredict(query string) string
}

type entry struct {
	query   string
	knn     string
	lexicon string
	ms      int64
}

type resultMsg struct {
	entry entry
	err   error
}

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	engine   Classifier
	dataset  *models.Dataset
	analysis config.AnalysisConfig
	input    textinput.Model
	viewport viewport.Model
	history  []entry
	status   string
	ready    bool
}

// New creates a new TUI model over an already loaded dataset.
func New(engine Classifier, ds *models.Dataset, analysis config.AnalysisConfig) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a tweet and press Enter"
	ti.Focus()
	ti.CharLimit = 280
	vp := viewport.New(0, 0)
	return Model{
		engine:   engine,
		dataset:  ds,
		analysis: analysis,
		input:    ti,
		viewport: vp,
		status:   fmt.Sprintf("Loaded %d documents from %s. Type to classify.", len(ds.Documents), ds.Name),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and classification result events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, hh := historyBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		headerLines := 2
		footerLines := 1
		reserved := headerLines + footerLines + ih + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-hh)
		m.viewport.SetContent(m.renderHistory())
		return m, nil

	case resultMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
		} else {
			m.history = append([]entry{msg.entry}, m.history...)
			m.status = fmt.Sprintf("Classified %q", msg.entry.query)
		}
		m.viewport.SetContent(m.renderHistory())
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query != "" {
				m.input.SetValue("")
				m.status = fmt.Sprintf("Classifying %q...", query)
				return m, m.classifyCmd(query)
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// classifyCmd runs both predictors off the UI goroutine.
func (m Model) classifyCmd(query string) tea.Cmd {
	return func() tea.Msg {
		req := &models.ClassifyRequest{
			Query:  query,
			K:      m.analysis.K,
			Vote:   m.analysis.Vote,
			Metric: m.analysis.Metric,
		}
		report, err := m.engine.Classify(context.Background(), m.dataset, req)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{entry: entry{
			query:   query,
			knn:     report.Predictions[0].Predicted,
			lexicon: m.engine.LexiconPredict(query),
			ms:      report.QueryTime,
		}}
	}
}

// View renders the session layout: header, history, input, status.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("TweetClassifier")
	summary := summaryStyle.Render(fmt.Sprintf("dataset=%s documents=%d k=%d vote=%s metric=%s",
		m.dataset.Name, len(m.dataset.Documents), m.analysis.K, m.analysis.Vote, m.analysis.Metric))
	history := historyBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + history + "\n" + input + "\n" + status
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return "No predictions yet."
	}
	var b strings.Builder
	for i, e := range m.history {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "> %s\n", e.query)
		fmt.Fprintf(&b, "  knn:     %s  (%dms)\n", labelStyle(e.knn).Render(e.knn), e.ms)
		fmt.Fprintf(&b, "  lexicon: %s\n", labelStyle(e.lexicon).Render(e.lexicon))
	}
	return b.String()
}

var (
	historyBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	positiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	negativeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	neutralStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func labelStyle(label string) lipgloss.Style {
	switch label {
	case lexicon.Positive:
		return positiveStyle
	case lexicon.Negative:
		return negativeStyle
	default:
		return neutralStyle
	}
}
