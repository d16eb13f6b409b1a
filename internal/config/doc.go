// Package config loads, merges, and validates the application
// configuration from environment variables, command-line flags, and an
// optional JSON file. Sources are merged in priority order (environment
// first, then flags, then the JSON file, then built-in defaults) so that
// a value set in a higher-priority source is never overwritten.
package config
