package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"piggybank/internal/family"
	"piggybank/internal/payout"
)

type payoutState int

const (
	payoutStateFamily payoutState = iota
	payoutStateWeek
	payoutStateRunning
	payoutStateResult
)

type PayoutModel struct {
	CommonModel
	familyService *family.Service
	payoutService *payout.Service

	state  payoutState
	picker FamilyPicker
	fam    *family.Family

	form      *huh.Form
	weekStart string
	spinner   spinner.Model

	result *payout.Result
	names  map[string]string
	err    error
}

func NewPayoutModel(familySvc *family.Service, payoutSvc *payout.Service) PayoutModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return PayoutModel{
		familyService: familySvc,
		payoutService: payoutSvc,
		state:         payoutStateFamily,
		picker:        NewFamilyPicker(familySvc),
		weekStart:     PreviousWeekStart(),
		spinner:       s,
	}
}

func (m PayoutModel) Title() string { return "Run Weekly Payout" }

func (m PayoutModel) ShortHelp() string {
	switch m.state {
	case payoutStateRunning:
		return "Running..."
	case payoutStateResult:
		return "Esc: back to menu"
	}
	return "Esc: back | Enter: confirm"
}

func (m PayoutModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m PayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FamilySelectedMsg:
		m.fam = msg.Family
		m.form = m.buildWeekForm()
		m.state = payoutStateWeek
		return m, m.form.Init()

	case payoutResultMsg:
		m.state = payoutStateResult
		m.result = msg.result
		m.names = msg.names
		m.err = msg.err
		return m, nil
	}

	switch m.state {
	case payoutStateFamily:
		return m.updateFamily(msg)
	case payoutStateWeek:
		return m.updateWeek(msg)
	case payoutStateRunning:
		return m.updateRunning(msg)
	case payoutStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m PayoutModel) updateFamily(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m PayoutModel) updateWeek(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = payoutStateFamily
		m.picker = NewFamilyPicker(m.familyService)
		return m, m.picker.Init()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = payoutStateRunning
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, m.runPayoutCmd())
}

func (m PayoutModel) updateRunning(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m PayoutModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}
	return m, nil
}

func (m PayoutModel) buildWeekForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("week_start").
				Title("Week Start").
				Description("Sunday starting the week to pay out").
				Placeholder("YYYY-MM-DD").
				Value(&m.weekStart).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("must be a YYYY-MM-DD date")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m PayoutModel) View() string {
	switch m.state {
	case payoutStateFamily:
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())

	case payoutStateWeek:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Pay out %s\n\n%s", m.fam.Name, m.form.View()),
		)

	case payoutStateRunning:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Paying out approved chores...", m.spinner.View()),
		)

	case payoutStateResult:
		return m.viewResult()
	}

	return ""
}

func (m PayoutModel) viewResult() string {
	if m.err != nil && m.result == nil {
		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render("Payout Complete!")
	if m.err != nil {
		header = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			Render("Payout finished with errors")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Week %s to %s\n\n", m.result.WeekStart, m.result.WeekEnd)

	for _, p := range m.result.Paid {
		fmt.Fprintf(&b, "  %s: %s coins\n", m.childName(p.ChildID.String()), FormatCoins(p.Amount))
	}
	for _, id := range m.result.AlreadyPaid {
		fmt.Fprintf(&b, "  %s: already paid\n", m.childName(id.String()))
	}
	for _, id := range m.result.NothingDue {
		fmt.Fprintf(&b, "  %s: nothing due\n", m.childName(id.String()))
	}

	if m.err != nil {
		fmt.Fprintf(&b, "\n%v\n", m.err)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", b.String()),
	)
}

func (m PayoutModel) childName(id string) string {
	if name, ok := m.names[id]; ok {
		return name
	}
	return id
}

type payoutResultMsg struct {
	result *payout.Result
	names  map[string]string
	err    error
}

const payoutTimeout = time.Minute

func (m PayoutModel) runPayoutCmd() tea.Cmd {
	familyID := m.fam.ID
	weekStart := m.weekStart

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), payoutTimeout)
		defer cancel()

		names := make(map[string]string)
		if children, err := m.familyService.ListChildren(ctx, familyID); err == nil {
			for _, c := range children {
				names[c.ID.String()] = c.Name
			}
		}

		result, err := m.payoutService.Run(ctx, familyID, weekStart)
		return payoutResultMsg{result: result, names: names, err: err}
	}
}
