// Package config handles configuration of the cfgkit tool.
//
// Configuration is layered, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the nearest .cfgkit.toml or .cfgkit.yaml, searched upward from the
//     working directory to the home directory
//  3. CFGKIT_* environment variables, where _ separates key levels
//     (CFGKIT_LOG_VERBOSITY sets log.verbosity)
//  4. overrides passed by the caller, usually command-line flags
package config
