package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"piggybank/internal/family"
	"piggybank/internal/ledger"
)

type balancesState int

const (
	balancesStateFamily balancesState = iota
	balancesStateBrowse
)

type childBalance struct {
	Child   *family.Child
	Balance ledger.Balance
}

type BalancesModel struct {
	CommonModel
	familyService *family.Service
	ledgerService *ledger.Service

	state  balancesState
	picker FamilyPicker
	fam    *family.Family

	table    table.Model
	balances []childBalance

	loading bool
	err     error
}

func NewBalancesModel(familySvc *family.Service, ledgerSvc *ledger.Service) BalancesModel {
	columns := []table.Column{
		{Title: "Child", Width: 25},
		{Title: "Available", Width: 12},
		{Title: "Reserved", Width: 12},
		{Title: "Total", Width: 12},
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

	return BalancesModel{
		familyService: familySvc,
		ledgerService: ledgerSvc,
		state:         balancesStateFamily,
		picker:        NewFamilyPicker(familySvc),
		table:         t,
	}
}

func (m BalancesModel) Title() string { return "Balances" }

func (m BalancesModel) ShortHelp() string {
	if m.state == balancesStateFamily {
		return "Enter: select | Esc: back"
	}
	return "Esc: back | r: refresh"
}

func (m BalancesModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m BalancesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FamilySelectedMsg:
		m.fam = msg.Family
		m.state = balancesStateBrowse
		m.loading = true
		return m, m.loadBalancesCmd()

	case balancesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.balances = msg.balances
		m.err = nil
		m.refreshTable()
		return m, nil
	}

	switch m.state {
	case balancesStateFamily:
		return m.updateFamily(msg)
	case balancesStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m BalancesModel) updateFamily(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m BalancesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = balancesStateFamily
			m.picker = NewFamilyPicker(m.familyService)
			return m, m.picker.Init()
		case "r":
			m.loading = true
			return m, m.loadBalancesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BalancesModel) View() string {
	if m.state == balancesStateFamily {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading balances...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Balances: %s", m.fam.Name))

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

func (m *BalancesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.balances))
	for _, cb := range m.balances {
		rows = append(rows, table.Row{
			cb.Child.Name,
			FormatCoins(cb.Balance.Available),
			FormatCoins(cb.Balance.Reserved),
			FormatCoins(cb.Balance.Available + cb.Balance.Reserved),
		})
	}
	m.table.SetRows(rows)
}

type balancesLoadedMsg struct {
	balances []childBalance
	err      error
}

func (m BalancesModel) loadBalancesCmd() tea.Cmd {
	familyID := m.fam.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		children, err := m.familyService.ListChildren(ctx, familyID)
		if err != nil {
			return balancesLoadedMsg{err: err}
		}

		balances := make([]childBalance, 0, len(children))
		for _, child := range children {
			balance, err := m.ledgerService.Balance(ctx, child.ID)
			if err != nil {
				return balancesLoadedMsg{err: err}
			}

			balances = append(balances, childBalance{Child: child, Balance: balance})
		}

		return balancesLoadedMsg{balances: balances}
	}
}
