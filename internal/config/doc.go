// Package config loads pixday's application configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pixday/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/pixday/config.toml
//   - Data directory: ~/.local/share/pixday (database and log live here)
//   - Export directory: ~/Pictures/pixday
//   - Palette file: ~/.config/pixday/palette.yaml
//   - Grid size: 16 (one of 16, 32, 64)
//   - Brush size: 1 (clamped to 8)
//   - Upscaled export size: 1024 pixels
//   - Fit padding: 2 screen units
//   - Gallery refresh: 30 seconds
//
// # TOML Format
//
//	data_dir     = "~/.local/share/pixday"
//	export_dir   = "~/Pictures/pixday"
//	palette_file = "~/.config/pixday/palette.yaml"
//	grid_size    = 16
//	brush_size   = 1
//	upscale_size = 1024
//	fit_padding  = 2
//	refresh_secs = 30
//
// Every field is optional. Tilde expansion is performed on all paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - A grid_size outside the supported set
//
// Missing config files are NOT an error. User-facing preferences that change
// while the program runs (theme, export size, gallery order) live in the
// prefs package instead.
package config
