// Package forkconfig loads ambient, non-language configuration for the
// forklang CLI driver: REPL prompt text, whether diagnostics are colorized,
// and the mantissa precision of Float values. It has no bearing on the
// interpreter's language semantics, which are fixed.
package forkconfig

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dekarrin/forklang/internal/interp"
)

// Config is the on-disk shape of a forklang config file.
type Config struct {
	// Prompt is the text shown before each line read in interactive mode.
	Prompt string `toml:"prompt"`

	// Colorize controls whether diagnostics are printed in color.
	Colorize bool `toml:"colorize"`

	// Precision is the mantissa precision, in bits, used for every Float
	// value the interpreter constructs.
	Precision uint `toml:"precision"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		Prompt:    "> ",
		Colorize:  true,
		Precision: interp.FloatPrecision,
	}
}

// Load reads and parses a TOML config file at path. A missing file is not
// an error; Default() is returned instead.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
