package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adreel-cli/adreel/playlist"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	videoField = iota
	clickField
	fieldsPerSlot
)

// slot is one editable row of the collector.
type slot struct {
	handle playlist.Handle
	video  textinput.Model
	click  textinput.Model
}

func (s *slot) input(field int) *textinput.Model {
	if field == videoField {
		return &s.video
	}
	return &s.click
}

// form mirrors the collector slots as text inputs.
type form struct {
	collector *playlist.Collector
	slots     []*slot
	focus     int
	err       error
	width     int
}

func newForm(collector *playlist.Collector) *form {
	f := &form{collector: collector}

	for _, h := range collector.Handles() {
		entry, _ := collector.Get(h)
		s := f.newSlot(h)
		s.video.SetValue(entry.Source)
		s.click.SetValue(entry.Landing)
		f.slots = append(f.slots, s)
	}

	f.focusField(0)
	return f
}

func (f *form) newSlot(h playlist.Handle) *slot {
	makeInput := func(placeholder string) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholder
		input.Prompt = ""
		input.CharLimit = 2048
		if f.width > 0 {
			input.Width = f.width
		}
		return input
	}

	return &slot{
		handle: h,
		video:  makeInput("https://drive.google.com/file/d/.../view"),
		click:  makeInput("https://..."),
	}
}

func (f *form) setWidth(width int) {
	f.width = width
	for _, s := range f.slots {
		s.video.Width = width
		s.click.Width = width
	}
}

func (f *form) current() (*slot, int) {
	return f.slots[f.focus/fieldsPerSlot], f.focus % fieldsPerSlot
}

func (f *form) focusField(i int) tea.Cmd {
	total := len(f.slots) * fieldsPerSlot
	f.focus = playlist.Wrap(i, total)

	for _, s := range f.slots {
		s.video.Blur()
		s.click.Blur()
	}

	s, field := f.current()
	return s.input(field).Focus()
}

func (f *form) add() tea.Cmd {
	s := f.newSlot(f.collector.AddEntry())
	f.slots = append(f.slots, s)
	return f.focusField((len(f.slots) - 1) * fieldsPerSlot)
}

func (f *form) remove() tea.Cmd {
	s, _ := f.current()
	if err := f.collector.Remove(s.handle); err != nil {
		f.err = err
		return nil
	}

	f.slots = lo.Filter(f.slots, func(other *slot, _ int) bool {
		return other != s
	})
	f.err = nil
	return f.focusField(max(f.focus-fieldsPerSlot, 0))
}

// update forwards typing to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	s, field := f.current()
	input := s.input(field)

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return cmd
}

// submit copies the inputs into the collector and finalizes it.
// On a validation failure the offending row gets the focus.
func (f *form) submit() (playlist.Playlist, tea.Cmd) {
	for _, s := range f.slots {
		if err := f.collector.Set(s.handle, s.video.Value(), s.click.Value()); err != nil {
			f.err = err
			return nil, nil
		}
	}

	p, err := f.collector.Finalize()
	if err == nil {
		f.err = nil
		return p, nil
	}

	f.err = err

	var validationErr *playlist.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, nil
	}

	field := videoField
	if errors.Is(err, playlist.ErrInvalidLandingLink) {
		field = clickField
	} else if errors.Is(err, playlist.ErrMissingField) && strings.TrimSpace(f.slots[validationErr.Index].video.Value()) != "" {
		field = clickField
	}
	return nil, f.focusField(validationErr.Index*fieldsPerSlot + field)
}

func (f *form) label(i int) string {
	return fmt.Sprintf("Video %d", i+1)
}
