package store

import (
	"errors"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig reads `.daylist.yaml` from $DAYLIST_CONFIG_PATH or the working
// directory. DAYLIST_PATH overrides the configured store path.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.daylist.db")
	v.SetConfigName(".daylist") // .yaml is implicit
	v.SetEnvPrefix("DAYLIST")
	v.AutomaticEnv()

	if override := os.Getenv("DAYLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

// ConfigFile returns the config file cfg was read from, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// StaticConfig is a Config with a fixed base path.
type StaticConfig string

func (s StaticConfig) BasePath() string {
	return string(s)
}
