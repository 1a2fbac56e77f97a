package remote

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries everything needed to open a user session: where the
// document store lives, which user the identity provider signed in, and
// whether the UI cursor is mirrored remotely.
type Config struct {
	Path          string `json:"path"`
	User          string `json:"user"`
	PersistCursor bool   `json:"persist_cursor"`
}

// LoadConfig reads the .bithab config file and BITHAB_* environment
// overrides.
func LoadConfig() (*Config, error) {
	viper.SetDefault("path", "~/.bithab.db")
	viper.SetDefault("persist_cursor", true)
	viper.SetConfigName(".bithab") // .yaml is implicit
	viper.SetEnvPrefix("BITHAB")
	viper.AutomaticEnv()

	if override := os.Getenv("BITHAB_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("remote: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("remote: expand path: %w", err)
	}

	return &Config{
		Path:          path,
		User:          viper.GetString("user"),
		PersistCursor: viper.GetBool("persist_cursor"),
	}, nil
}
