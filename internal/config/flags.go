package config

import (
	"flag"
)

// Flags holds the configuration file paths given on the command line.
type Flags struct {
	// ConfigPath is the JSON config file path from --config.
	ConfigPath string
	// EnvFilePath is the KEY=VALUE file path from --env-file.
	EnvFilePath string
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	--config json file path with configs
//	--env-file KEY=VALUE file path
//
// Both flags are optional. Returns an error if args contain an unknown flag
// or a flag is missing its value.
func ParseFlags(name string, args []string) (*Flags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	flags := &Flags{}
	fs.StringVar(&flags.ConfigPath, "config", "", "JSON config file path")
	fs.StringVar(&flags.EnvFilePath, "env-file", "", "KEY=VALUE env file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}
