// Package main is the entry point for adreel.
package main

import (
	"github.com/adreel-cli/adreel/cmd"
	"github.com/adreel-cli/adreel/config"
	"github.com/adreel-cli/adreel/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
