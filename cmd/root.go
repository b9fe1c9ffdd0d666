// Package cmd implements the command-line interface for adreel.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/player"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// persistentFlag binds a root flag to a config key so the flag overrides the file.
func persistentFlag(name, short, usage, configKey string, complete func() []string) {
	rootCmd.PersistentFlags().StringP(name, short, "", usage)
	lo.Must0(viper.BindPFlag(configKey, rootCmd.PersistentFlags().Lookup(name)))

	if complete != nil {
		lo.Must0(rootCmd.RegisterFlagCompletionFunc(name, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return complete(), cobra.ShellCompDirectiveNoFileComp
		}))
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	persistentFlag("icons", "I", "Icon variant", key.IconsVariant, icon.AvailableVariants)
	persistentFlag("playlist", "", "Path of the playlist hand-off record", key.PlaylistPath, nil)
	persistentFlag("player", "P", "Media player to use", key.Player, player.Names)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd collects video links and then plays them.
var rootCmd = &cobra.Command{
	Use:   constant.Adreel,
	Short: "Play a reel of shared Drive videos, each with a click-through link",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Play a reel of shared Drive videos, each with a click-through link"),
	Example: "  adreel              enter links, then play them\n" +
		"  adreel play -c      resume the saved playlist\n" +
		"  adreel -P vlc play  play with VLC",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		p := collect()
		play(cmd.Context(), p, playOptions{})
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
