package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jkweon/txscreen/internal/screening"
)

type RunsModel struct {
	CommonModel
	screenSvc *screening.Service

	table   table.Model
	runs    []*screening.Run
	loading bool
	err     error
}

func NewRunsModel(screenSvc *screening.Service) RunsModel {
	columns := []table.Column{
		{Title: "Created", Width: 18},
		{Title: "Run ID", Width: 38},
		{Title: "Records", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return RunsModel{
		screenSvc: screenSvc,
		table:     t,
		loading:   true,
	}
}

func (m RunsModel) Title() string { return "Screening Runs" }
func (m RunsModel) ShortHelp() string {
	return "Enter: open run | r: refresh | q: quit"
}

type loadRunsMsg struct {
	runs []*screening.Run
	err  error
}

func (m RunsModel) loadRunsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		runs, err := m.screenSvc.Runs(ctx)

		return loadRunsMsg{runs: runs, err: err}
	}
}

func (m RunsModel) Init() tea.Cmd {
	return m.loadRunsCmd()
}

func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRunsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.runs = msg.runs
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadRunsCmd()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.runs) {
				return m, nil
			}

			id := m.runs[idx].ID

			return m, func() tea.Msg { return SelectRunMsg{ID: id} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *RunsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.runs))
	for _, run := range m.runs {
		rows = append(rows, table.Row{
			FormatTimestamp(run.CreatedAt),
			run.ID.String(),
			fmt.Sprintf("%d", run.RecordCount),
		})
	}

	m.table.SetRows(rows)
}

func (m RunsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading runs...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.runs) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No screening runs yet.")
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())
}
