package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Play
	Pause
	Link
	Video
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "ok",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・)…",
		squares: "🟨",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟦",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(－_－)",
		squares: "🟪",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(☞ﾟ∀ﾟ)☞",
		squares: "🟧",
	},
	Video: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "#",
		kaomoji: "(⌐■_■)",
		squares: "⬛",
	},
}
