package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/adreel-cli/adreel/filesystem"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearable lists the locations "clear" may remove, with the wording used in its output.
var clearable = map[string]string{
	"cache":    "cache directory",
	"history":  "resume history",
	"playlist": "saved playlist",
	"temp":     "player sockets",
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range locations {
		if what, ok := clearable[l.flag]; ok {
			clearCmd.Flags().Bool(l.flag, false, "Clear the "+what)
		}
	}
	clearCmd.Flags().BoolP("all", "a", false, "Clear everything above")
	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask before removing the saved playlist")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cache, the resume history or the saved playlist",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		targets := lo.Filter(locations, func(l location, _ int) bool {
			_, ok := clearable[l.flag]
			return ok && (all || lo.Must(cmd.Flags().GetBool(l.flag)))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range targets {
			what := clearable[l.flag]

			if l.flag == "playlist" && !lo.Must(cmd.Flags().GetBool("yes")) && !confirm("Remove the saved playlist?") {
				continue
			}

			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), what))
			err := filesystem.API().RemoveAll(l.path())
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(what))
		}
	},
}

func confirm(message string) bool {
	var ok bool
	handleErr(survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok))
	return ok
}
