package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jkweon/txscreen/internal/record"
	"github.com/jkweon/txscreen/internal/screening"
)

type RecordsModel struct {
	CommonModel
	screenSvc *screening.Service

	runID   uuid.UUID
	table   table.Model
	records []*record.Record
	loading bool
	err     error
}

func NewRecordsModel(screenSvc *screening.Service, runID uuid.UUID) RecordsModel {
	columns := []table.Column{
		{Title: "Score", Width: 5},
		{Title: "Risk", Width: 14},
		{Title: "Date", Width: 10},
		{Title: "Deposit", Width: 12},
		{Title: "Withdrawal", Width: 12},
		{Title: "Category", Width: 12},
		{Title: "Description", Width: 30},
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

	return RecordsModel{
		screenSvc: screenSvc,
		runID:     runID,
		table:     t,
		loading:   true,
	}
}

func (m RecordsModel) Title() string { return "Run Records" }
func (m RecordsModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

type loadRecordsMsg struct {
	records []*record.Record
	err     error
}

func (m RecordsModel) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.screenSvc.Records(ctx, m.runID)

		return loadRecordsMsg{records: records, err: err}
	}
}

func (m RecordsModel) Init() tea.Cmd {
	return m.loadRecordsCmd()
}

func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRecordsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadRecordsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *RecordsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))
	for _, rec := range m.records {
		rows = append(rows, table.Row{
			rec.RiskScore.StringFixed(1),
			rec.RiskClass,
			rec.Date,
			FormatWon(rec.Deposit),
			FormatWon(rec.Withdrawal),
			rec.Category,
			rec.Description,
		})
	}

	m.table.SetRows(rows)
}

func (m RecordsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading records...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	header := lipgloss.NewStyle().PaddingBottom(1).Render(
		fmt.Sprintf("Run %s: %d records, highest risk first", m.runID, len(m.records)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, tableView)
}
