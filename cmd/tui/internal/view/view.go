package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is one screen of the parent console: a bubbletea model plus the
// title and key hints the menu shell renders around it.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by every screen model.
type CommonModel struct{}

// BackMsg asks the shell to return to the main menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
