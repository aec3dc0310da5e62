// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
package icon

// Icon identifies a single UI symbol in the global registry.
type Icon int

const (
	// Check marks a successful operation.
	Check Icon = iota
	// Cross marks a failed operation.
	Cross
	// Progress marks an operation still in flight.
	Progress
	// Lock marks a field whose value cannot be changed.
	Lock
	// Modified marks unsaved changes.
	Modified
	// Game marks a game entry.
	Game
)

var icons = map[Icon]iconDef{
	Check: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(^_^)",
		squares: "🟩",
	},
	Cross: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(;_;)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(o_o)",
		squares: "🟨",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "=",
		kaomoji: "(x_x)",
		squares: "🟪",
	},
	Modified: {
		emoji:   "✏️",
		nerd:    "",
		plain:   "*",
		kaomoji: "(@_@)",
		squares: "🟧",
	},
	Game: {
		emoji:   "🎮",
		nerd:    "",
		plain:   ">",
		kaomoji: "(>_<)",
		squares: "🟦",
	},
}
