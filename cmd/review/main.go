package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jkweon/txscreen/cmd/review/internal/view"
	"github.com/jkweon/txscreen/internal/config"
	"github.com/jkweon/txscreen/internal/database"
	"github.com/jkweon/txscreen/internal/screening"
	screeningStore "github.com/jkweon/txscreen/internal/screening/store"
)

type model struct {
	screenSvc *screening.Service

	currentView View

	runsView    view.RunsModel
	recordsView view.RecordsModel
}

type View int

const (
	ViewRuns    View = 0
	ViewRecords View = 1
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	screenSvc := screening.NewService(screeningStore.New(db))

	return model{
		screenSvc:   screenSvc,
		currentView: ViewRuns,
		runsView:    view.NewRunsModel(screenSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.runsView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.currentView == ViewRuns {
				return m, tea.Quit
			}
		}
	case view.SelectRunMsg:
		m.currentView = ViewRecords
		m.recordsView = view.NewRecordsModel(m.screenSvc, msg.ID)

		return m, m.recordsView.Init()
	case view.BackMsg:
		m.currentView = ViewRuns
		return m, m.runsView.Init()
	}

	switch m.currentView {
	case ViewRuns:
		var newModel tea.Model
		newModel, cmd = m.runsView.Update(msg)
		m.runsView = newModel.(view.RunsModel)
	case ViewRecords:
		var newModel tea.Model
		newModel, cmd = m.recordsView.Update(msg)
		m.recordsView = newModel.(view.RecordsModel)
	}

	return m, cmd
}

func (m model) View() string {
	var active view.View

	switch m.currentView {
	case ViewRuns:
		active = m.runsView
	case ViewRecords:
		active = m.recordsView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Render(active.Title())
	help := lipgloss.NewStyle().Faint(true).Render(active.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, active.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
