package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"piggybank/internal/family"
	"piggybank/internal/saver"
)

type goalsState int

const (
	goalsStateFamily goalsState = iota
	goalsStateChild
	goalsStateBrowse
	goalsStateEdit
)

type GoalsModel struct {
	CommonModel
	familyService *family.Service
	saverService  *saver.Service

	state        goalsState
	familyPicker FamilyPicker
	childPicker  ChildPicker
	child        *family.Child

	table  table.Model
	savers []*saver.Saver
	form   *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formName   string
	formTarget string
	formAlloc  string
	formIsGoal bool
}

func NewGoalsModel(familySvc *family.Service, saverSvc *saver.Service) GoalsModel {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Target", Width: 10},
		{Title: "Goal", Width: 6},
		{Title: "Alloc %", Width: 9},
		{Title: "Done", Width: 6},
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

	return GoalsModel{
		familyService: familySvc,
		saverService:  saverSvc,
		state:         goalsStateFamily,
		familyPicker:  NewFamilyPicker(familySvc),
		table:         t,
	}
}

func (m GoalsModel) Title() string { return "Savings Goals" }

func (m GoalsModel) ShortHelp() string {
	switch m.state {
	case goalsStateBrowse:
		return "Esc: back | e: edit | r: refresh"
	case goalsStateEdit:
		return "Navigate form | Esc: cancel"
	}
	return "Enter: select | Esc: back"
}

func (m GoalsModel) Init() tea.Cmd {
	return m.familyPicker.Init()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FamilySelectedMsg:
		m.childPicker = NewChildPicker(m.familyService, msg.Family.ID)
		m.state = goalsStateChild
		return m, m.childPicker.Init()

	case ChildSelectedMsg:
		m.child = msg.Child
		m.state = goalsStateBrowse
		m.loading = true
		return m, m.loadSaversCmd()

	case goalsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.savers = msg.savers
		m.err = nil
		m.refreshTable()
		return m, nil

	case goalSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = ""
		}
		m.state = goalsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadSaversCmd()
	}

	switch m.state {
	case goalsStateFamily:
		return m.updateFamily(msg)
	case goalsStateChild:
		return m.updateChild(msg)
	case goalsStateBrowse:
		return m.updateBrowse(msg)
	case goalsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m GoalsModel) updateFamily(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.familyPicker, cmd = m.familyPicker.Update(msg)
	return m, cmd
}

func (m GoalsModel) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = goalsStateFamily
		m.familyPicker = NewFamilyPicker(m.familyService)
		return m, m.familyPicker.Init()
	}

	var cmd tea.Cmd
	m.childPicker, cmd = m.childPicker.Update(msg)
	return m, cmd
}

func (m GoalsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = goalsStateChild
			return m, m.childPicker.Init()
		case "r":
			m.loading = true
			return m, m.loadSaversCmd()
		case "e":
			return m.enterEditMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m GoalsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.savers) {
		return m, nil
	}

	item := m.savers[idx]
	m.formName = item.Name
	m.formTarget = strconv.FormatInt(item.Target, 10)
	m.formAlloc = strconv.Itoa(item.Allocation)
	m.formIsGoal = item.IsGoal

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("target").
				Title("Target (coins)").
				Value(&m.formTarget).
				Validate(validCoins),

			huh.NewInput().
				Key("allocation").
				Title("Allocation %").
				Value(&m.formAlloc).
				Validate(validPercent),

			huh.NewConfirm().
				Key("is_goal").
				Title("Active goal?").
				Value(&m.formIsGoal),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = goalsStateEdit
	m.table.Blur()
	return m, m.form.Init()
}

func validCoins(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative whole number")
	}
	return nil
}

func validPercent(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

func (m GoalsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = goalsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m GoalsModel) View() string {
	switch m.state {
	case goalsStateFamily:
		return lipgloss.NewStyle().Padding(1).Render(m.familyPicker.View())
	case goalsStateChild:
		return lipgloss.NewStyle().Padding(1).Render(m.childPicker.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading savers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Savers: %s", m.child.Name))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == goalsStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Edit Saver\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *GoalsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.savers))
	for _, item := range m.savers {
		goal := ""
		if item.IsGoal {
			goal = "yes"
		}
		done := ""
		if item.Completed {
			done = "yes"
		}
		rows = append(rows, table.Row{
			item.Name,
			FormatCoins(item.Target),
			goal,
			strconv.Itoa(item.Allocation),
			done,
		})
	}
	m.table.SetRows(rows)
}

type goalsLoadedMsg struct {
	savers []*saver.Saver
	err    error
}

func (m GoalsModel) loadSaversCmd() tea.Cmd {
	childID := m.child.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		savers, err := m.saverService.ListByChild(ctx, childID)
		return goalsLoadedMsg{savers: savers, err: err}
	}
}

type goalSaveMsg struct {
	err error
}

func (m GoalsModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.savers) {
		return nil
	}

	id := m.savers[idx].ID
	name := m.formName
	target, _ := strconv.ParseInt(m.formTarget, 10, 64)
	alloc, _ := strconv.Atoi(m.formAlloc)
	isGoal := m.formIsGoal

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.saverService.Update(ctx, id, saver.UpdateParams{
			Name:       &name,
			Target:     &target,
			IsGoal:     &isGoal,
			Allocation: &alloc,
		})

		return goalSaveMsg{err: err}
	}
}
