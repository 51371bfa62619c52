package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempEnvFile(t *testing.T, body string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "env-*")
	require.NoError(t, err)
	_, err = f.WriteString(body)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns an
// empty EffectiveConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, newEmptyConfig(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstConfigWins verifies that a key set by an earlier (higher
// priority) config is never replaced by a later one.
func TestBuild_FirstConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&EffectiveConfig{
			APIKeys:  map[string]string{ProviderGemini: "high"},
			Settings: map[string]any{SettingDefaultModel: "o3"},
		},
		&EffectiveConfig{
			APIKeys:  map[string]string{ProviderGemini: "low", ProviderOpenAI: "sk-low"},
			Settings: map[string]any{SettingDefaultModel: "auto", SettingLogLevel: "DEBUG"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "high", cfg.APIKeys[ProviderGemini])
	assert.Equal(t, "sk-low", cfg.APIKeys[ProviderOpenAI])
	assert.Equal(t, "o3", cfg.Settings[SettingDefaultModel])
	assert.Equal(t, "DEBUG", cfg.Settings[SettingLogLevel])
}

// TestBuild_ZeroValueEntryWins verifies that an explicitly configured zero
// value (false, 0, "") in a higher-priority source is kept.
func TestBuild_ZeroValueEntryWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&EffectiveConfig{
			APIKeys: map[string]string{},
			Settings: map[string]any{
				"max_conversation_turns": float64(0),
				"stream":                 false,
			},
		},
		&EffectiveConfig{
			APIKeys: map[string]string{},
			Settings: map[string]any{
				"max_conversation_turns": "20",
				"stream":                 true,
			},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, float64(0), cfg.Settings["max_conversation_turns"])
	assert.Equal(t, false, cfg.Settings["stream"])
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_EmptyPathIsSkipped verifies that an absent config file path
// appends nothing and sets no error.
func TestWithJSON_EmptyPathIsSkipped(t *testing.T) {
	b := newConfigBuilder().withJSON("")
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithJSON_AppendsParsedConfig verifies that a valid file becomes one
// source config.
func TestWithJSON_AppendsParsedConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"api_keys": map[string]string{"gemini": "abc"},
	})

	b := newConfigBuilder().withJSON(path)
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "abc", b.configs[0].APIKeys[ProviderGemini])
}

// TestWithJSON_RecordsParseError verifies that an unreadable path sets b.err.
func TestWithJSON_RecordsParseError(t *testing.T) {
	b := newConfigBuilder().withJSON("/nonexistent/config.json")
	require.Error(t, b.err)

	var parseErr *ParseError
	require.ErrorAs(t, b.err, &parseErr)
	assert.Equal(t, "/nonexistent/config.json", parseErr.Path)
}

// ── withEnv / withEnvFile / withDefaults ──────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv(map[string]string{}))
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder().withEnv(map[string]string{"GEMINI_API_KEY": "abc"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "abc", b.configs[0].APIKeys[ProviderGemini])
}

// TestWithEnvFile_EmptyPathIsSkipped verifies that an absent env file path
// appends nothing and sets no error.
func TestWithEnvFile_EmptyPathIsSkipped(t *testing.T) {
	b := newConfigBuilder().withEnvFile("")
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithEnvFile_RecordsParseError verifies that an unreadable path sets
// b.err with the path attached.
func TestWithEnvFile_RecordsParseError(t *testing.T) {
	b := newConfigBuilder().withEnvFile("/nonexistent/.env")
	require.Error(t, b.err)

	var parseErr *ParseError
	require.ErrorAs(t, b.err, &parseErr)
	assert.Equal(t, "/nonexistent/.env", parseErr.Path)
}

// TestWithDefaults_AppendsBuiltins verifies that the built-in defaults become
// one source config.
func TestWithDefaults_AppendsBuiltins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)
	assert.Equal(t, "auto", b.configs[0].Settings[SettingDefaultModel])
	assert.Equal(t, "INFO", b.configs[0].Settings[SettingLogLevel])
}
