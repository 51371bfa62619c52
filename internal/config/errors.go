package config

import (
	"errors"
	"fmt"
)

// ErrBadShape indicates a config file that parsed as JSON but does not match
// the expected {"api_keys": ..., "settings": ...} shape.
var ErrBadShape = errors.New("config file shape mismatch")

// ParseError reports a configuration source that was provided but could not
// be read or decoded. It is always fatal: a misconfigured API key set cannot
// be safely guessed, so resolution never continues past one.
type ParseError struct {
	// Path is the file path of the offending source.
	Path string
	// Err is the underlying read, decode, or shape error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
