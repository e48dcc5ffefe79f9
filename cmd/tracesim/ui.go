// # cmd/tracesim/ui.go
package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tracesim/internal/similarity"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	distinctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

type item struct {
	title, desc string
	isMatch     bool
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title + i.desc }

type model struct {
	list       list.Model
	results    []similarity.Result
	threshold  float64
	fileA      string
	fileB      string
	lastUpdate time.Time
}

type updateMsg struct {
	results []similarity.Result
	when    time.Time
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	case updateMsg:
		m.results = msg.results
		m.lastUpdate = msg.when

		items := []list.Item{}
		for i, r := range m.results {
			items = append(items, item{
				title: fmt.Sprintf("Pair %d: %.2f%%", i+1, r.Percent),
				desc: fmt.Sprintf("%s  vs  %s",
					shorten(r.ChainsA.Digest()), shorten(r.ChainsB.Digest())),
				isMatch: r.Percent >= m.threshold,
			})
		}
		m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf("Last update: %v | %s vs %s | %d pairs",
		m.lastUpdate.Format("15:04:05"),
		filepath.Base(m.fileA), filepath.Base(m.fileB), len(m.results)))

	matching := 0
	for _, r := range m.results {
		if r.Percent >= m.threshold {
			matching++
		}
	}

	var summary string
	if matching > 0 {
		summary = matchStyle.Render(fmt.Sprintf("%d recurring (>= %.0f%%)", matching, m.threshold))
	} else {
		summary = distinctStyle.Render("all pairs distinct")
	}

	header := fmt.Sprintf("%s\n%s | %s\n", titleStyle("Stacktrace Similarity Monitor"), status, summary)
	return docStyle.Render(header + "\n" + m.list.View())
}

func initialModel(fileA, fileB string, threshold float64) model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Trace Pairs"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{
		list:       l,
		threshold:  threshold,
		fileA:      fileA,
		fileB:      fileB,
		lastUpdate: time.Now(),
	}
}

func shorten(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
