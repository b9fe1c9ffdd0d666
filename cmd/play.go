package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/adreel-cli/adreel/history"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/open"
	"github.com/adreel-cli/adreel/playback"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/playlist"
	"github.com/adreel-cli/adreel/resolve"
	"github.com/adreel-cli/adreel/tui"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("continue", "c", false, "Resume from the video played last time")
	playCmd.Flags().StringP("from", "f", "", "Start from the video whose links best match the query")
	playCmd.MarkFlagsMutuallyExclusive("continue", "from")

	playCmd.Flags().Bool("autoadvance", false, "Play the next video when the current one ends (mpv only)")
	lo.Must0(viper.BindPFlag(key.PlayerAutoAdvance, playCmd.Flags().Lookup("autoadvance")))
}

// playCmd plays the saved playlist.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the saved playlist",
	Example: "  adreel play --continue\n" +
		"  adreel play --from sponsor.example --player vlc",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := newStore().Load()
		handleErr(err)

		play(cmd.Context(), p, playOptions{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
			From:     lo.Must(cmd.Flags().GetString("from")),
		})
	},
}

type playOptions struct {
	Continue bool
	From     string
}

// play hands p to the configured player and runs the remote until the user quits.
func play(ctx context.Context, p playlist.Playlist, options playOptions) {
	if ctx == nil {
		ctx = context.Background()
	}

	engine, err := player.New(viper.GetString(key.Player))
	handleErr(err)
	checkEngine(engine)

	controller, err := playback.New(p, resolve.New(), engine, playback.BrowserFunc(func(url string) error {
		return open.StartWith(url, viper.GetString(key.BrowserApp))
	}))
	handleErr(err)

	start, err := startIndex(p, options)
	handleErr(err)

	first, err := controller.Start(ctx, start)
	handleErr(err)

	handleErr(tui.Play(&tui.Options{
		Controller:  controller,
		Player:      engine,
		First:       first,
		AutoAdvance: viper.GetBool(key.PlayerAutoAdvance),
		Resume:      viper.GetBool(key.PlayerResume),
	}))
}

func startIndex(p playlist.Playlist, options playOptions) (int, error) {
	switch {
	case options.From != "":
		return findEntry(p, options.From)
	case options.Continue:
		position, err := history.Lookup(p)
		if err != nil {
			return 0, err
		}
		if saved, ok := position.Get(); ok {
			log.Infof("resuming at video %s", saved)
			return saved.Index, nil
		}
		log.Info("no saved position for this playlist, starting from the beginning")
	}

	return 0, nil
}

// findEntry returns the index of the entry whose links match query best.
func findEntry(p playlist.Playlist, query string) (int, error) {
	targets := lo.Map(p, func(e playlist.Entry, _ int) string {
		return e.String()
	})

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("no video matches %q", query)
	}

	sort.Sort(ranks)
	return ranks[0].OriginalIndex, nil
}
