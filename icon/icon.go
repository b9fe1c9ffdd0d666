// Package icon renders status symbols in the variant chosen by icons.variant:
// emoji, nerd-font glyphs, plain ASCII, kaomoji or colored squares.
package icon

import (
	"github.com/adreel-cli/adreel/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef holds one symbol in every variant.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

// Get renders the symbol in the configured variant. Unknown variants fall back to plain.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return d.plain
	}
}

// Get renders i.
func Get(i Icon) string {
	return icons[i].Get()
}
