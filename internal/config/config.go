// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
)

// Providers whose API keys are recognized by name in the environment.
// Any other variable ending in _API_KEY is passed through with its
// lowercased prefix as the provider name.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderXAI        = "xai"
	ProviderOpenRouter = "openrouter"
)

// Canonical setting names. They match the keys of the JSON file's "settings"
// object and the lowercased form of the corresponding environment variables.
const (
	SettingDefaultModel = "default_model"
	SettingLogLevel     = "log_level"
)

// EffectiveConfig is the merged configuration consumed by server startup.
// It is constructed once by [Resolve] or [GetEffectiveConfig] and must not be
// mutated afterwards.
//
// Fields:
//   - APIKeys maps a provider name (e.g. "gemini", "openai") to its secret
//     key. A missing entry means the provider is not configured.
//   - Settings maps a setting name to a string, number, or boolean value.
//     Settings this package does not recognize are carried verbatim; their
//     interpretation is the caller's responsibility.
type EffectiveConfig struct {
	APIKeys  map[string]string `json:"api_keys"`
	Settings map[string]any    `json:"settings"`
}

// DefaultModel returns the "default_model" setting, or the empty string if it
// is not a string (e.g. overridden with a number in the JSON file).
func (c *EffectiveConfig) DefaultModel() string {
	return c.stringSetting(SettingDefaultModel)
}

// LogLevel returns the "log_level" setting, or the empty string if it is not
// a string.
func (c *EffectiveConfig) LogLevel() string {
	return c.stringSetting(SettingLogLevel)
}

func (c *EffectiveConfig) stringSetting(name string) string {
	v, _ := c.Settings[name].(string)
	return v
}

// Redacted returns a copy of the config with every API key value masked.
// Use it whenever the config is logged or printed.
func (c *EffectiveConfig) Redacted() *EffectiveConfig {
	out := &EffectiveConfig{
		APIKeys:  make(map[string]string, len(c.APIKeys)),
		Settings: make(map[string]any, len(c.Settings)),
	}
	for provider := range c.APIKeys {
		out.APIKeys[provider] = "[redacted]"
	}
	for name, value := range c.Settings {
		out.Settings[name] = value
	}
	return out
}

func newEmptyConfig() *EffectiveConfig {
	return &EffectiveConfig{
		APIKeys:  map[string]string{},
		Settings: map[string]any{},
	}
}

// defaultConfig returns the built-in fallback values used when no other
// source supplies a key.
func defaultConfig() *EffectiveConfig {
	return &EffectiveConfig{
		APIKeys: map[string]string{},
		Settings: map[string]any{
			SettingDefaultModel: "auto",
			SettingLogLevel:     "INFO",
		},
	}
}

// Resolve merges configuration from the given sources into one
// [EffectiveConfig]. An empty configPath or envFilePath means that source is
// absent, which is not an error; a path that is set but unreadable or
// malformed fails with a [*ParseError] and no partial result.
//
// Priority order, highest to lowest:
//  1. JSON config file at configPath
//  2. environ (the process environment)
//  3. KEY=VALUE file at envFilePath
//  4. built-in defaults
//
// Resolve has no side effects beyond reading the two optional files, and is
// deterministic for identical inputs.
func Resolve(configPath, envFilePath string, environ map[string]string) (*EffectiveConfig, error) {
	return newConfigBuilder().
		withJSON(configPath).
		withEnv(environ).
		withEnvFile(envFilePath).
		withDefaults().
		build()
}

// GetEffectiveConfig resolves the configuration for the current process: the
// --config and --env-file flags are parsed from os.Args, with the CONFIG and
// ENV_FILE environment variables as fallbacks for the two paths, and the
// process environment supplies the variable source.
//
// Returns a fully populated *EffectiveConfig or an error if flag parsing
// fails or any provided file cannot be read.
func GetEffectiveConfig() (*EffectiveConfig, error) {
	flags, err := ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		return nil, err
	}

	environ := environMap(os.Environ())

	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = environ["CONFIG"]
	}
	envFilePath := flags.EnvFilePath
	if envFilePath == "" {
		envFilePath = environ["ENV_FILE"]
	}

	return Resolve(configPath, envFilePath, environ)
}

// environMap converts os.Environ-style "KEY=VALUE" entries into a map.
func environMap(entries []string) map[string]string {
	environ := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		environ[key] = value
	}
	return environ
}
