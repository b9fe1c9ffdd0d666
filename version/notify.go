package version

import (
	"context"
	"fmt"
	"time"

	"github.com/adreel-cli/adreel/color"
	"github.com/adreel-cli/adreel/constant"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/key"
	"github.com/adreel-cli/adreel/style"
	"github.com/adreel-cli/adreel/util"
	"github.com/spf13/viper"
)

// Notify prints a hint when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(fmt.Sprintf("https://github.com/%s/releases/tag/v%s", constant.Repository, latest)),
	)
}
