package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultOutput = "text"
	defaultAddr   = "127.0.0.1:8080"
)

// Config is the runtime configuration, merged from flags, LOGTALLY_* environment
// variables and an optional .logtally.yaml file.
type Config struct {
	Output  string `mapstructure:"output"`
	Color   bool   `mapstructure:"color"`
	Pattern string `mapstructure:"pattern"`
	Message string `mapstructure:"message"`
	Verbose bool   `mapstructure:"verbose"`
	LogFile string `mapstructure:"log-file"`
	Addr    string `mapstructure:"addr"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("LOGTALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("output", defaultOutput)
	v.SetDefault("color", true)
	v.SetDefault("addr", defaultAddr)
	return v
}

// loadConfig reads the config file, if any, and unmarshals the merged settings.
// A missing default config file is not an error; a missing explicit one is.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	var cfg Config

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".logtally")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	switch cfg.Output {
	case "text", "json":
	default:
		return cfg, fmt.Errorf("invalid output format %q (want text or json)", cfg.Output)
	}

	return cfg, nil
}
