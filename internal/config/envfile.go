package config

import (
	"github.com/joho/godotenv"
)

// parseEnvFile reads a KEY=VALUE file and builds a source config from it.
// The file's values occupy the environment-variable namespace below the
// process environment, so a live environment variable always wins over the
// same name in the file.
//
// Returns a [*ParseError] if the file cannot be read or parsed.
func parseEnvFile(path string) (*EffectiveConfig, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return fromEnviron(values)
}
