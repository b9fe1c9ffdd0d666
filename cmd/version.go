package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	Player   string `json:"player"`
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Purple),
}).Parse(`{{ accent "▇▇▇" }} {{ accent .App }}

  {{ faint "Version " }}   {{ bold .Version }}
  {{ faint "Revision" }}   {{ bold .Revision }}
  {{ faint "Built at" }}   {{ bold .BuiltAt }}
  {{ faint "Built by" }}   {{ bold .BuiltBy }}
  {{ faint "Platform" }}   {{ bold .Platform }}
  {{ faint "Player  " }}   {{ bold .Player }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := buildInfo{
			App:      constant.Adreel,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
			Player:   viper.GetString(key.Player),
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(info))
			return
		}

		defer version.Notify()
		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
