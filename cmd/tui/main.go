package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"piggybank/cmd/tui/internal/view"
	"piggybank/internal/allocation"
	"piggybank/internal/config"
	"piggybank/internal/database"
	"piggybank/internal/family"
	familyStore "piggybank/internal/family/store"
	"piggybank/internal/ledger"
	ledgerStore "piggybank/internal/ledger/store"
	"piggybank/internal/payout"
	"piggybank/internal/saver"
	saverStore "piggybank/internal/saver/store"
)

type model struct {
	familyService *family.Service
	ledgerService *ledger.Service
	saverService  *saver.Service
	payoutService *payout.Service

	currentView View

	balancesView view.BalancesModel
	ledgerView   view.LedgerModel
	goalsView    view.GoalsModel
	payoutView   view.PayoutModel
}

type View int

const (
	ViewMenu     View = 0
	ViewBalances View = 1
	ViewLedger   View = 2
	ViewGoals    View = 3
	ViewPayout   View = 4
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

	familySvc := family.NewService(familyStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db))
	saverSvc := saver.NewService(saverStore.New(db))
	engine := allocation.NewEngine(saverSvc, ledgerSvc)
	payoutSvc := payout.NewService(familySvc, ledgerSvc, engine)

	return model{
		familyService: familySvc,
		ledgerService: ledgerSvc,
		saverService:  saverSvc,
		payoutService: payoutSvc,
		currentView:   ViewMenu,
		balancesView:  view.NewBalancesModel(familySvc, ledgerSvc),
		ledgerView:    view.NewLedgerModel(familySvc, ledgerSvc),
		goalsView:     view.NewGoalsModel(familySvc, saverSvc),
		payoutView:    view.NewPayoutModel(familySvc, payoutSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewBalances
				m.balancesView = view.NewBalancesModel(m.familyService, m.ledgerService)

				return m, m.balancesView.Init()
			case "2":
				m.currentView = ViewLedger
				m.ledgerView = view.NewLedgerModel(m.familyService, m.ledgerService)

				return m, m.ledgerView.Init()
			case "3":
				m.currentView = ViewGoals
				m.goalsView = view.NewGoalsModel(m.familyService, m.saverService)

				return m, m.goalsView.Init()
			case "4":
				m.currentView = ViewPayout
				m.payoutView = view.NewPayoutModel(m.familyService, m.payoutService)

				return m, m.payoutView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewBalances:
		var newModel tea.Model
		newModel, cmd = m.balancesView.Update(msg)
		m.balancesView = newModel.(view.BalancesModel)
	case ViewLedger:
		var newModel tea.Model
		newModel, cmd = m.ledgerView.Update(msg)
		m.ledgerView = newModel.(view.LedgerModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	case ViewPayout:
		var newModel tea.Model
		newModel, cmd = m.payoutView.Update(msg)
		m.payoutView = newModel.(view.PayoutModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Piggybank TUI\n\n" +
				"1. Balances\n" +
				"2. Ledger\n" +
				"3. Savings Goals\n" +
				"4. Run Weekly Payout\n\n" +
				"q. Quit",
		)
	case ViewBalances:
		return m.balancesView.View()
	case ViewLedger:
		return m.ledgerView.View()
	case ViewGoals:
		return m.goalsView.View()
	case ViewPayout:
		return m.payoutView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
