// Package config loads and persists Cumulus client settings.
//
// Settings come from a TOML dot-file in the user's home directory, with an
// optional --config file merged over it. Only keys present in a file
// override earlier values, so the merge is a plain layered decode.
package config
