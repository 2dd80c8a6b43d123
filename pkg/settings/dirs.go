package settings

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/text"
)

// configFileName holds the name of the config file.
const configFileName = "config.json"

// GetConfigPath returns the default location of the config file.
func GetConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "octo", configFileName)
	}

	if configHome := os.Getenv("HOME"); configHome != "" {
		return filepath.Join(configHome, ".config", "octo", configFileName)
	}

	return ""
}

func initDir(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return errors.Wrapf(err, text.T("failed to create config directory %q"), dir)
	}
	return nil
}
