// Package config resolves sunsetology settings from flags, environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SUNSETOLOGY_MODE.
const EnvPrefix = "SUNSETOLOGY"

// Known configuration keys. They match the CLI flag names.
const (
	KeyMode      = "mode"
	KeyAlgorithm = "algorithm"
	KeyFormat    = "format"
	KeyGradient  = "gradient"
	KeyPreview   = "preview"
	KeyKind      = "kind"
	KeyOutputDir = "output-dir"
	KeyLang      = "lang"
	KeyQuoteFont = "quote-font"
)

var defaults = map[string]any{
	KeyMode:      "sunset",
	KeyAlgorithm: "bucket",
	KeyFormat:    "hex",
	KeyGradient:  "linear",
	KeyPreview:   false,
	KeyKind:      "wallpaper",
	KeyOutputDir: ".",
	KeyLang:      "en",
	KeyQuoteFont: "",
}

// Config holds resolved settings. Precedence is flag, env, file, default.
type Config struct {
	vp *viper.Viper
}

// DefaultFile returns the config file read when none is given explicitly.
func DefaultFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sunsetology", "config.yaml"), nil
}

// Load builds a Config. An explicit file must exist; the default file is optional.
// flags may be nil.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	vp := viper.New()
	for k, v := range defaults {
		vp.SetDefault(k, v)
	}

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	vp.AutomaticEnv()

	if err := readFile(vp, file); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := vp.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	return &Config{vp: vp}, nil
}

func readFile(vp *viper.Viper, file string) error {
	explicit := file != ""
	if !explicit {
		var err error
		if file, err = DefaultFile(); err != nil {
			return nil
		}
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}

	vp.SetConfigFile(file)
	vp.SetConfigType("yaml")
	if err := vp.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", file, err)
	}
	return nil
}

// String returns the value for key.
func (c *Config) String(key string) string {
	return c.vp.GetString(key)
}

// Bool returns the value for key.
func (c *Config) Bool(key string) bool {
	return c.vp.GetBool(key)
}

// File returns the config file that was read, or "" if none.
func (c *Config) File() string {
	return c.vp.ConfigFileUsed()
}
