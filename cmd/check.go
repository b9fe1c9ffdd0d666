package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/style"
	"github.com/charmbracelet/lipgloss"
)

// checkEngine exits with an install hint when the media player is missing.
func checkEngine(p player.Player) {
	if err := p.Available(); err != nil {
		printMissingDependencyError(p.Name())
		os.Exit(1)
	}
}

// installCommand suggests how to install dep with the usual package manager of goos.
func installCommand(goos, dep string) string {
	switch goos {
	case constant.Darwin:
		if dep == "vlc" {
			return "brew install --cask vlc"
		}
		return "brew install " + dep
	case constant.Linux:
		return "sudo apt install " + dep
	case constant.Windows:
		return "scoop install " + dep
	default:
		return ""
	}
}

func printMissingDependencyError(dep string) {
	installCmd := installCommand(runtime.GOOS, dep)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Media Player", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The media player '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
