// Package config assembles the effective server configuration from multiple
// sources at startup.
//
// Configuration is merged from the following sources in priority order
// (earlier sources override later ones for keys they set):
//  1. JSON config file (--config flag or CONFIG env var)
//  2. Process environment variables
//  3. .env file (--env-file flag or ENV_FILE env var)
//  4. Built-in defaults
//
// The main entry points are [GetEffectiveConfig] for process-level startup
// and [Resolve] for callers that supply paths and environment explicitly.
package config
