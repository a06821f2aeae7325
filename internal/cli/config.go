package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given.
const defaultConfigFile = "trendlens.toml"

// Config holds the optional settings of a trendlens.toml file. Every field
// has a flag counterpart; flags win when both are set.
type Config struct {
	OutputDir string `toml:"output_dir"`
	Column    string `toml:"column"`
	Delimiter string `toml:"delimiter"`
	LogFile   string `toml:"log_file"`
}

// loadConfig reads the config file at path. An empty path falls back to
// trendlens.toml in the working directory, which is allowed to be absent.
// An explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge fills unset flags from the config file.
func (cfg Config) merge(flags *analyzeFlags) {
	if flags.outputDir == "" {
		flags.outputDir = cfg.OutputDir
	}
	if flags.column == "" {
		flags.column = cfg.Column
	}
	if flags.delimiter == "" {
		flags.delimiter = cfg.Delimiter
	}
	if flags.logFile == "" {
		flags.logFile = cfg.LogFile
	}
}
