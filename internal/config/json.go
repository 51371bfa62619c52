package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileConfig is the shape of the JSON config file:
//
//	{
//	  "api_keys": { "<provider>": "<secret>", ... },
//	  "settings": { "<name>": <string|number|boolean>, ... }
//	}
//
// Both objects are optional. Settings keys this package does not recognize
// are preserved in the output untouched.
type fileConfig struct {
	APIKeys  map[string]string `json:"api_keys"`
	Settings map[string]any    `json:"settings"`
}

func parseJSON(path string) (*EffectiveConfig, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := fc.validate(); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg := newEmptyConfig()
	for provider, key := range fc.APIKeys {
		putKey(cfg, provider, key)
	}
	for name, value := range fc.Settings {
		if value == nil {
			continue
		}
		cfg.Settings[name] = value
	}

	return cfg, nil
}

// validate checks that every settings value is a scalar. api_keys values are
// already constrained to strings by the decode. Null settings are allowed and
// treated as absent.
func (fc *fileConfig) validate() error {
	for name, value := range fc.Settings {
		switch value.(type) {
		case nil, string, float64, bool:
		default:
			return fmt.Errorf("%w: setting %q has type %T, want string, number, or boolean", ErrBadShape, name, value)
		}
	}

	return nil
}
