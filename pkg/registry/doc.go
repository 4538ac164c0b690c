// Package registry provides a generic, thread-safe registry of named
// items. cfgkit uses it to look up template engines by name.
package registry
