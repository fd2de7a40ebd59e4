// Package config loads pint's optional TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pint/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # TOML Format
//
//	file = "/var/log/paludis.log"
//	repository = "gentoo,paludis-overlay"
//	colour = true
//	date = false
//	log_level = "warn"
//
// Every field is optional. Tilde expansion is performed on file. Values set
// here are defaults only; explicit command-line flags take precedence.
package config
