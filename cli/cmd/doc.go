// Package cmd implements the fanlog subcommands: emit dispatches messages
// through the configured targets, init writes a default configuration file,
// and check validates a configuration file and describes its targets.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the default configuration file.
	ConfigIdentifier = "config"
)
