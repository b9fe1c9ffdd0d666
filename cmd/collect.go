package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/playlist"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/tui"
	"github.com/adreel-cli/adreel/util"
	"github.com/adreel-cli/adreel/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(collectCmd)
}

// collectCmd edits the playlist without starting the player.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Enter video and click-through links and save them as the playlist",
	Run: func(cmd *cobra.Command, args []string) {
		p := collect()
		fmt.Printf(
			"%s saved %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(p.Len(), "video", "videos"),
			where.Playlist(),
		)
	},
}

func newStore() *playlist.Store {
	return playlist.NewStore(where.Playlist())
}

// collect runs the collector form. A saved playlist is either replaced or
// loaded into the form, as the user chooses. Leaving the form exits.
func collect() playlist.Playlist {
	store := newStore()
	collector := playlist.NewCollector(store)

	if store.Exists() {
		if !confirm(fmt.Sprintf("A playlist is already saved at %s. Start over?", store.Path)) {
			saved, err := store.Load()
			handleErr(err)
			collector = playlist.NewCollectorFrom(store, saved)
		}
	}

	p, err := tui.Collect(collector)
	if errors.Is(err, tui.ErrAborted) {
		os.Exit(0)
	}
	handleErr(err)

	return p
}
