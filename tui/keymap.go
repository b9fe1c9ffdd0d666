package tui

import (
	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/style"
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit, cancel,
	addSlot, removeSlot,
	nextField, prevField,
	submit,
	next, prev, playPause, reload,
	openURL,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		addSlot: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "add video"),
		),
		removeSlot: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove video"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("start player")),
		),
		next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next video"),
		),
		prev: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "prev video"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp(style.Fg(color.Orange)("o"), style.Fg(color.Orange)("open link")),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case collectState:
		return h(k.submit, k.addSlot, k.removeSlot, k.cancel),
			h(k.submit, k.addSlot, k.removeSlot, k.nextField, k.prevField, k.cancel)
	case loadingState:
		return to2(h(withDescription(k.next, "skip"), k.prev, k.quit))
	case playingState:
		return h(k.playPause, k.openURL, k.next, k.prev, k.showHelp),
			h(k.playPause, k.openURL, k.next, k.prev, k.reload, k.quit)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
