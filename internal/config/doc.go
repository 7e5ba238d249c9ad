// Package config holds the configuration for orgscan.
//
// Configuration comes from three layers, later layers winning:
//  1. Documented defaults (NewConfig)
//  2. An optional YAML configuration file (.orgscan)
//  3. CLI flags
//
// The Config struct is populated once at startup and passed through the
// application via dependency injection rather than global state.
package config
