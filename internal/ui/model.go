// Package ui provides ephemeral status notifications for the terminal views.
package ui

import (
	"strings"
	"time"

	"github.com/adreel-cli/adreel/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the notification currently shown under the view.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// ClearNotificationMsg resets the notification.
type ClearNotificationMsg struct{}

// Notify returns a tea.Cmd that shows msg for a few seconds.
func Notify(msg string) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// ClearNotification returns a delayed tea.Cmd that clears the current notification.
func ClearNotification() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case string:
		m.notification = msg
		m.notifiedAt = time.Now()
		return ClearNotification()
	case ClearNotificationMsg:
		if time.Since(m.notifiedAt) >= 3*time.Second {
			m.notification = ""
		}
		return nil
	}
	return nil
}

// Notification returns the text currently shown.
func (m *Model) Notification() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
