package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the client settings: where the local slot lives and which
// sync server to talk to in room mode.
type Config struct {
	Path   string
	Server string
}

const (
	defaultPath   = "~/.wheresmy"
	defaultServer = "http://localhost:8080"
)

// loadConfig resolves settings from flags, WHERESMY_* environment variables,
// and an optional .wheresmy config file in $HOME or the working directory.
func loadConfig() (Config, error) {
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("server", defaultServer)
	viper.SetConfigName(".wheresmy") // .yaml is implicit
	viper.SetEnvPrefix("WHERESMY")
	viper.AutomaticEnv()

	if override := os.Getenv("WHERESMY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return Config{}, fmt.Errorf("resolving data directory: %w", err)
	}

	return Config{Path: path, Server: viper.GetString("server")}, nil
}
