// Package config provides configuration loading, merging, and validation
// facilities for the resourcekit server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env files
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// Defaults are applied to whatever is still unset and the result is
// validated. The main entry point is [GetStructuredConfig].
package config
