// Package key defines viper config keys
package key

// Storage
const (
	StorageSDRoot        = "storage.sd_root"
	StorageSecondaryRoot = "storage.secondary_root"
	StorageActive        = "storage.active"
)

// Console
const (
	ConsoleModel        = "console.model"
	ConsoleDSiMode      = "console.dsi_mode"
	ConsoleSCFGUnlocked = "console.scfg_unlocked"
)

// Bootstrap
const (
	BootstrapEnabled = "bootstrap.enabled"
)

// Boot defaults
const (
	BootDSiMode          = "boot.dsi_mode"
	BootBoostCPU         = "boot.boost_cpu"
	BootBoostVRAM        = "boot.boost_vram"
	BootLanguage         = "boot.language"
	BootBootstrapNightly = "boot.bootstrap_nightly"
)

// TUI
const (
	TUIItemSpacing  = "tui.item_spacing"
	TUIShowKeyHelp  = "tui.show_key_help"
	TUIShowGameInfo = "tui.show_game_info"
)

// Icons
const (
	IconsVariant = "icons.variant"
)

// History
const (
	HistorySaveOnEdit = "history.save_on_edit"
)

// Search
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Logs
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// DefinedFieldsCount is the total count of defined fields.
// It serves the testing purposes
const DefinedFieldsCount = 23
