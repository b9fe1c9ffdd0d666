package tui

import (
	"github.com/adreel-cli/adreel/internal/ui"
	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/playlist"
	"github.com/adreel-cli/adreel/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statefulBubble holds the whole application state: the collector form,
// the playback controller and the component models used to render them.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	helpC    help.Model
	notifier *ui.Model

	form      *form
	collected playlist.Playlist

	controller *playback.Controller
	events     *player.EventListener
	watching   bool
	lastError  error

	width, height int

	options *Options
}

// raiseError records a fatal error and switches to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// syncState derives the view from the controller after every transition.
func (b *statefulBubble) syncState() {
	switch b.controller.State() {
	case playback.Loading:
		b.setState(loadingState)
	default:
		b.setState(playingState)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width

	if b.form != nil {
		b.form.setWidth(b.width)
	}
}

// load runs t off the event loop and reports its Result back.
func (b *statefulBubble) load(t *playback.Task) tea.Cmd {
	if t == nil {
		return nil
	}

	b.syncState()
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		return t.Run()
	})
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:   keymap,
		notifier: &ui.Model{},
		options:  options,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
