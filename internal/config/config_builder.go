package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*EffectiveConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*EffectiveConfig, 0, 4),
	}
}

// build folds the collected source configs into one. Sources are appended in
// priority order (highest first) and each merge only fills keys the result
// does not already have, so a key set by a higher-priority source is never
// replaced by a lower one.
func (b *configBuilder) build() (*EffectiveConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := newEmptyConfig()
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithTransformers(fillMissingKeys{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withJSON(path string) *configBuilder {
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg, err := fromEnviron(environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withEnvFile(path string) *configBuilder {
	if path == "" {
		return b
	}

	fileCfg, err := parseEnvFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// fillMissingKeys merges map fields by key presence: an entry that exists in
// the destination is kept even when its value is a zero value (false, 0, "").
// mergo's default map handling would let a lower-priority source replace an
// explicitly configured zero value.
type fillMissingKeys struct{}

func (fillMissingKeys) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() != reflect.Map {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if src.IsNil() {
			return nil
		}
		if dst.IsNil() {
			if !dst.CanSet() {
				return nil
			}
			dst.Set(reflect.MakeMapWithSize(typ, src.Len()))
		}
		for _, key := range src.MapKeys() {
			if dst.MapIndex(key).IsValid() {
				continue
			}
			dst.SetMapIndex(key, src.MapIndex(key))
		}
		return nil
	}
}
