package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"piggybank/internal/family"
)

// FamilySelectedMsg is emitted when the user picks a family.
type FamilySelectedMsg struct {
	Family *family.Family
}

// FamilyPicker is a reusable component for selecting one family.
type FamilyPicker struct {
	svc *family.Service

	families []*family.Family
	cursor   int
	loading  bool
	err      error
}

func NewFamilyPicker(svc *family.Service) FamilyPicker {
	return FamilyPicker{svc: svc, loading: true}
}

type familiesLoadedMsg struct {
	families []*family.Family
	err      error
}

func (m FamilyPicker) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		families, err := m.svc.ListFamilies(ctx)
		return familiesLoadedMsg{families: families, err: err}
	}
}

func (m FamilyPicker) Update(msg tea.Msg) (FamilyPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case familiesLoadedMsg:
		m.loading = false
		m.families = msg.families
		m.err = msg.err
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor < len(m.families)-1 {
				m.cursor++
			}
		case tea.KeyEnter:
			if m.cursor >= 0 && m.cursor < len(m.families) {
				fam := m.families[m.cursor]
				return m, func() tea.Msg {
					return FamilySelectedMsg{Family: fam}
				}
			}
		}
	}

	return m, nil
}

func (m FamilyPicker) View() string {
	if m.loading {
		return "Loading families..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.families) == 0 {
		return "No families yet. Create one through the API first."
	}

	s := "Select Family:\n\n"
	for i, fam := range m.families {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %s\n", cursor, fam.Name)
	}
	s += "\n(Enter to select, Esc to back)"

	return s
}

// ChildSelectedMsg is emitted when the user picks a child.
type ChildSelectedMsg struct {
	Child *family.Child
}

// ChildPicker is a reusable component for selecting one child of a family.
type ChildPicker struct {
	svc      *family.Service
	familyID uuid.UUID

	children []*family.Child
	cursor   int
	loading  bool
	err      error
}

func NewChildPicker(svc *family.Service, familyID uuid.UUID) ChildPicker {
	return ChildPicker{svc: svc, familyID: familyID, loading: true}
}

type childrenLoadedMsg struct {
	children []*family.Child
	err      error
}

func (m ChildPicker) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		children, err := m.svc.ListChildren(ctx, m.familyID)
		return childrenLoadedMsg{children: children, err: err}
	}
}

func (m ChildPicker) Update(msg tea.Msg) (ChildPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case childrenLoadedMsg:
		m.loading = false
		m.children = msg.children
		m.err = msg.err
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor < len(m.children)-1 {
				m.cursor++
			}
		case tea.KeyEnter:
			if m.cursor >= 0 && m.cursor < len(m.children) {
				child := m.children[m.cursor]
				return m, func() tea.Msg {
					return ChildSelectedMsg{Child: child}
				}
			}
		}
	}

	return m, nil
}

func (m ChildPicker) View() string {
	if m.loading {
		return "Loading children..."
	}

	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.children) == 0 {
		return "This family has no children yet."
	}

	s := "Select Child:\n\n"
	for i, child := range m.children {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %s\n", cursor, child.Name)
	}
	s += "\n(Enter to select, Esc to back)"

	return s
}
