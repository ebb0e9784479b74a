// Package config loads snc's optional .snc.toml, supplying defaults that
// CLI flags may override: the default output extension, whether -v
// auto-assembles, the extern list to declare, and default debug
// verbosity.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded form of .snc.toml.
type Config struct {
	Output struct {
		Extension string `toml:"extension"`
	} `toml:"output"`

	Assemble struct {
		Auto       bool     `toml:"auto"`
		Assembler  string   `toml:"assembler"`
		Linker     string   `toml:"linker"`
		Externs    []string `toml:"externs"`
		LinkerArgs []string `toml:"linker_args"`
	} `toml:"assemble"`

	Debug struct {
		Verbose bool `toml:"verbose"`
	} `toml:"debug"`
}

// Default returns the configuration snc uses when no .snc.toml is found
// or named.
func Default() *Config {
	cfg := &Config{}
	cfg.Output.Extension = ".o"
	cfg.Assemble.Auto = false
	cfg.Assemble.Assembler = "nasm"
	cfg.Assemble.Linker = "gcc"
	cfg.Assemble.Externs = []string{"printf", "malloc", "strlen", "strcpy", "strcat"}
	cfg.Assemble.LinkerArgs = []string{"-no-pie"}
	cfg.Debug.Verbose = false
	return cfg
}

// Load resolves the config file to use, in order: an explicit path (from
// --config), then ./.snc.toml, then $HOME/.snc.toml. It returns Default()
// unmodified, with no error, when none of those exist.
func Load(explicitPath string) (*Config, error) {
	path, ok := resolvePath(explicitPath)
	if !ok {
		return Default(), nil
	}
	return LoadFrom(path)
}

func resolvePath(explicitPath string) (string, bool) {
	if explicitPath != "" {
		return explicitPath, true
	}
	if _, err := os.Stat(".snc.toml"); err == nil {
		return ".snc.toml", true
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".snc.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// LoadFrom decodes path into a Config seeded with Default()'s values, so
// a partial .snc.toml only overrides the fields it sets.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
