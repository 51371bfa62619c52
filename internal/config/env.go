// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const apiKeySuffix = "_API_KEY"

// envConfig maps the recognized environment variables onto flat fields via
// caarlos0/env tags. Variable names are matched case-sensitively and exactly.
// All values are strings here; numbers and booleans can only enter a setting
// through the JSON config file.
type envConfig struct {
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	XAIAPIKey        string `env:"XAI_API_KEY"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`

	DefaultModel        string `env:"DEFAULT_MODEL"`
	LogLevel            string `env:"LOG_LEVEL"`
	ThinkDeepMode       string `env:"DEFAULT_THINKING_MODE_THINKDEEP"`
	ConversationTimeout string `env:"CONVERSATION_TIMEOUT_HOURS"`
	MaxTurns            string `env:"MAX_CONVERSATION_TURNS"`
	Locale              string `env:"LOCALE"`
	DisabledTools       string `env:"DISABLED_TOOLS"`
}

// fromEnviron builds a source config from an environment namespace: the
// recognized variables are parsed with caarlos0/env, and any other variable
// ending in _API_KEY is passed through as an API key for the provider named
// by its lowercased prefix. Variables outside both sets are ignored.
func fromEnviron(environ map[string]string) (*EffectiveConfig, error) {
	var ec envConfig
	err := env.ParseWithOptions(&ec, env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	cfg := newEmptyConfig()

	putKey(cfg, ProviderGemini, ec.GeminiAPIKey)
	putKey(cfg, ProviderOpenAI, ec.OpenAIAPIKey)
	putKey(cfg, ProviderXAI, ec.XAIAPIKey)
	putKey(cfg, ProviderOpenRouter, ec.OpenRouterAPIKey)

	putSetting(cfg, SettingDefaultModel, ec.DefaultModel)
	putSetting(cfg, SettingLogLevel, ec.LogLevel)
	putSetting(cfg, "default_thinking_mode_thinkdeep", ec.ThinkDeepMode)
	putSetting(cfg, "conversation_timeout_hours", ec.ConversationTimeout)
	putSetting(cfg, "max_conversation_turns", ec.MaxTurns)
	putSetting(cfg, "locale", ec.Locale)
	putSetting(cfg, "disabled_tools", ec.DisabledTools)

	for name, value := range environ {
		provider, ok := passthroughProvider(name)
		if !ok {
			continue
		}
		if _, exists := cfg.APIKeys[provider]; exists {
			continue
		}
		putKey(cfg, provider, value)
	}

	return cfg, nil
}

// passthroughProvider derives a provider name from an environment variable
// name of the form <PROVIDER>_API_KEY. Recognized variables are excluded so
// the typed envConfig mapping stays authoritative for them.
func passthroughProvider(name string) (string, bool) {
	prefix, found := strings.CutSuffix(name, apiKeySuffix)
	if !found || prefix == "" {
		return "", false
	}

	switch name {
	case "GEMINI_API_KEY", "OPENAI_API_KEY", "XAI_API_KEY", "OPENROUTER_API_KEY":
		return "", false
	}

	return strings.ToLower(prefix), true
}

func putKey(cfg *EffectiveConfig, provider, value string) {
	if value == "" {
		return
	}
	cfg.APIKeys[provider] = value
}

func putSetting(cfg *EffectiveConfig, name, value string) {
	if value == "" {
		return
	}
	cfg.Settings[name] = value
}
