// Package config aggregates the per-package configuration structs and loads
// them from the environment.
//
// Values come from three layers, later layers winning:
//  1. 'default' struct tags on the partial config structs
//  2. a .env file in the working directory, when present
//  3. process environment variables (LAUNCHER_PORT, ARTIFACT_SERVER_DIR, ...)
//
// The loaded Config is constructed once at program start and treated as
// immutable afterwards. No validation happens here: a bad executable path or
// an out-of-range port surfaces in the component that consumes it, or not at
// all.
package config
