package tui

import (
	"fmt"
	"strings"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case collectState:
		output = b.viewCollect()
	case loadingState:
		output = b.viewLoading()
	case playingState:
		output = b.viewPlaying()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewCollect() string {
	lines := []string{
		style.Title("Video Links"),
		"",
	}

	for i, s := range b.form.slots {
		lines = append(lines,
			style.Bold(b.form.label(i)),
			style.Faint("Google Drive link")+"  "+s.video.View(),
			style.Faint("Click URL")+"          "+s.click.View(),
			"",
		)
	}

	if b.form.err != nil {
		lines = append(lines, errorStyle.Render(wrap.String(icon.Get(icon.Fail)+" "+b.form.err.Error(), b.width)), "")
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewLoading() string {
	snapshot := b.controller.Snapshot()

	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.position(snapshot),
			"",
			b.spinnerC.View() + " " + style.Truncate(b.width)(snapshot.Entry.Source),
		},
	)
}

func (b *statefulBubble) viewPlaying() string {
	snapshot := b.controller.Snapshot()

	if snapshot.State == playback.Failed {
		return b.renderLines(
			true,
			[]string{
				style.ErrorTitle("Failed"),
				"",
				b.position(snapshot),
				"",
				errorStyle.Render(wrap.String(icon.Get(icon.Fail)+" "+snapshot.Err.Error(), b.width)),
			},
		)
	}

	status := icon.Get(icon.Play) + " Playing"
	if !snapshot.IsPlaying {
		status = icon.Get(icon.Pause) + " Paused"
	}

	return b.renderLines(
		true,
		[]string{
			style.Title("Now Playing"),
			"",
			b.position(snapshot),
			"",
			style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Video), style.Fg(color.Purple)(snapshot.Stream.Title))),
			style.Truncate(b.width)(fmt.Sprintf("%s %s", icon.Get(icon.Link), style.Faint(snapshot.Entry.Landing))),
			"",
			status,
		},
	)
}

func (b *statefulBubble) position(snapshot playback.Snapshot) string {
	return style.Fg(color.Orange)(fmt.Sprintf("Video %d of %d", snapshot.Index+1, snapshot.Len))
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " The player cannot continue:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
