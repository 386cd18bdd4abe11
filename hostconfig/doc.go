// Package hostconfig loads gesture engine tuning from a TOML file on
// disk, the way a host CLI would ship a user-editable config.
package hostconfig
