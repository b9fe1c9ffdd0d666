package cmd

import (
	"encoding/json"
	"os"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is one path reported by "where" and, when removable, wiped by "clear".
type location struct {
	flag  string
	short string
	title string
	path  func() string
	// internal paths are hidden from the default listing.
	internal bool
}

var locations = []location{
	{flag: "config", short: "c", title: "Config", path: where.Config},
	{flag: "playlist", short: "p", title: "Playlist", path: where.Playlist},
	{flag: "logs", short: "l", title: "Logs", path: where.Logs},
	{flag: "history", title: "History", path: where.History},
	{flag: "cache", title: "Cache", path: where.Cache, internal: true},
	{flag: "temp", title: "Temp", path: where.Temp, internal: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.title+" path")
		if l.internal {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}
	whereCmd.Flags().BoolP("json", "j", false, "Print every path as JSON")

	flags := lo.Map(locations, func(l location, _ int) string { return l.flag })
	whereCmd.MarkFlagsMutuallyExclusive(append(flags, "json")...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths of the config, playlist, logs and history",
	Run: func(cmd *cobra.Command, args []string) {
		if l, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		}); ok {
			cmd.Println(l.path())
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			paths := lo.SliceToMap(locations, func(l location) (string, string) {
				return l.flag, l.path()
			})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(paths))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		visible := lo.Reject(locations, func(l location, _ int) bool { return l.internal })

		for i, l := range visible {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", header(l.title), style.Fg(color.Yellow)("--"+l.flag))
			cmd.Println(l.path())
		}
	},
}
