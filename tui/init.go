package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (b *statefulBubble) Init() tea.Cmd {
	if b.state == collectState {
		return textinput.Blink
	}

	return b.load(b.options.First)
}
