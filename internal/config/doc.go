// Package config provides configuration loading, merging, and validation
// facilities for the gateway, users and posts binaries.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig], which validates the result
// for the binary's [Role].
package config
