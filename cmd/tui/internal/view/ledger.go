package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"piggybank/internal/family"
	"piggybank/internal/ledger"
)

type ledgerState int

const (
	ledgerStateFamily ledgerState = iota
	ledgerStateChild
	ledgerStateBrowse
)

type LedgerModel struct {
	CommonModel
	familyService *family.Service
	ledgerService *ledger.Service

	state        ledgerState
	familyPicker FamilyPicker
	childPicker  ChildPicker
	child        *family.Child

	table   table.Model
	entries []*ledger.Entry

	loading bool
	err     error
}

func NewLedgerModel(familySvc *family.Service, ledgerSvc *ledger.Service) LedgerModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 12},
		{Title: "Amount", Width: 10},
		{Title: "Note", Width: 35},
		{Title: "By", Width: 20},
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

	return LedgerModel{
		familyService: familySvc,
		ledgerService: ledgerSvc,
		state:         ledgerStateFamily,
		familyPicker:  NewFamilyPicker(familySvc),
		table:         t,
	}
}

func (m LedgerModel) Title() string { return "Ledger" }

func (m LedgerModel) ShortHelp() string {
	if m.state == ledgerStateBrowse {
		return "Esc: back | r: refresh"
	}
	return "Enter: select | Esc: back"
}

func (m LedgerModel) Init() tea.Cmd {
	return m.familyPicker.Init()
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FamilySelectedMsg:
		m.childPicker = NewChildPicker(m.familyService, msg.Family.ID)
		m.state = ledgerStateChild
		return m, m.childPicker.Init()

	case ChildSelectedMsg:
		m.child = msg.Child
		m.state = ledgerStateBrowse
		m.loading = true
		return m, m.loadEntriesCmd()

	case ledgerLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.entries = msg.entries
		m.err = nil
		m.refreshTable()
		return m, nil
	}

	switch m.state {
	case ledgerStateFamily:
		return m.updateFamily(msg)
	case ledgerStateChild:
		return m.updateChild(msg)
	case ledgerStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m LedgerModel) updateFamily(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.familyPicker, cmd = m.familyPicker.Update(msg)
	return m, cmd
}

func (m LedgerModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = ledgerStateFamily
		m.familyPicker = NewFamilyPicker(m.familyService)
		return m, m.familyPicker.Init()
	}

	var cmd tea.Cmd
	m.childPicker, cmd = m.childPicker.Update(msg)
	return m, cmd
}

func (m LedgerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = ledgerStateChild
			return m, m.childPicker.Init()
		case "r":
			m.loading = true
			return m, m.loadEntriesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m LedgerModel) View() string {
	switch m.state {
	case ledgerStateFamily:
		return lipgloss.NewStyle().Padding(1).Render(m.familyPicker.View())
	case ledgerStateChild:
		return lipgloss.NewStyle().Padding(1).Render(m.childPicker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Ledger: %s", m.child.Name))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *LedgerModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		rows = append(rows, table.Row{
			FormatDate(e.CreatedAt),
			string(e.Type),
			FormatCoins(e.Amount),
			e.Note,
			e.Actor.Name,
		})
	}
	m.table.SetRows(rows)
}

type ledgerLoadedMsg struct {
	entries []*ledger.Entry
	err     error
}

func (m LedgerModel) loadEntriesCmd() tea.Cmd {
	childID := m.child.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.ledgerService.Ledger(ctx, childID)
		return ledgerLoadedMsg{entries: entries, err: err}
	}
}
