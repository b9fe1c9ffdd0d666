package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/playlist"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playlistCmd)
}

// playlistCmd groups non-interactive operations on the hand-off record.
var playlistCmd = &cobra.Command{
	Use:     "playlist",
	Aliases: []string{"pl"},
	Short:   "Inspect and edit the saved playlist",
}

func init() {
	playlistCmd.AddCommand(playlistShowCmd)
	playlistShowCmd.Flags().BoolP("json", "j", false, "Print the raw JSON record")
	playlistShowCmd.SetOut(os.Stdout)
}

var playlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved playlist",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newStore().Load()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(p))
			return
		}

		number := style.New().Bold(true).Foreground(color.HiPurple).Render
		for i, e := range p {
			cmd.Printf("%s %s\n", number(fmt.Sprintf("%d.", i+1)), e.Source)
			cmd.Printf("   %s %s\n", icon.Get(icon.Link), style.Fg(color.Yellow)(e.Landing))
		}
	},
}

func init() {
	playlistCmd.AddCommand(playlistAddCmd)
}

// appendEntry validates one pair and appends it to the saved playlist, creating it if needed.
// Nothing is written when the pair or the saved entries are invalid.
func appendEntry(store *playlist.Store, video, click string) (playlist.Playlist, error) {
	if !store.Exists() {
		collector := playlist.NewCollector(store)
		if err := collector.Set(collector.Handles()[0], video, click); err != nil {
			return nil, err
		}
		return collector.Finalize()
	}

	saved, err := store.Load()
	if err != nil {
		return nil, err
	}

	collector := playlist.NewCollectorFrom(store, saved)
	if err := collector.Set(collector.AddEntry(), video, click); err != nil {
		return nil, err
	}
	return collector.Finalize()
}

var playlistAddCmd = &cobra.Command{
	Use:     "add <video link> <click url>",
	Short:   "Append one video to the saved playlist",
	Args:    cobra.ExactArgs(2),
	Example: "  adreel playlist add https://drive.google.com/file/d/ABC123/view https://example.com",
	Run: func(cmd *cobra.Command, args []string) {
		store := newStore()
		p, err := appendEntry(store, args[0], args[1])
		handleErr(err)

		fmt.Printf(
			"%s added video %d to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			p.Len(),
			store.Path,
		)
	},
}

func init() {
	playlistCmd.AddCommand(playlistImportCmd)
}

// importFile validates the record at path and installs it as the saved playlist.
func importFile(store *playlist.Store, path string) (playlist.Playlist, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	p, err := playlist.Decode(data)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := store.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

var playlistImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a JSON playlist file and make it the saved playlist",
	Long: `Validate a JSON playlist file and make it the saved playlist.
The file must be an array of {"video": "...", "click_url": "..."} objects, see "adreel playlist schema".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := newStore()
		p, err := importFile(store, args[0])
		handleErr(err)

		fmt.Printf(
			"%s imported %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(p.Len(), "video", "videos"),
			store.Path,
		)
	},
}

func init() {
	playlistCmd.AddCommand(playlistSchemaCmd)
	playlistSchemaCmd.SetOut(os.Stdout)
}

var playlistSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the playlist record",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(playlist.Schema()))
	},
}
