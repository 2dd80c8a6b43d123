package settings

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/D1CED/octo/pkg/text"
)

// Sort modes
const (
	Ascending  = "ascending"
	Descending = "descending"
)

// Config stores octo's persistent configuration.
type Config struct {
	AURURL        string `json:"aururl"`
	PacmanConf    string `json:"pacmanconf"`
	SortBy        string `json:"sortby"`
	SortMode      string `json:"sortmode"`
	Color         string `json:"color"`
	RequestSplitN int    `json:"requestsplitn"`
	AUR           bool   `json:"aur"`

	path string
}

var defaultConfig = Config{
	AURURL:        "https://aur.archlinux.org",
	PacmanConf:    "/etc/pacman.conf",
	SortBy:        "name",
	SortMode:      Ascending,
	Color:         "auto",
	RequestSplitN: 150,
	AUR:           false,
}

func Defaults() *Config {
	dc := new(Config)
	*dc = defaultConfig
	return dc
}

// NewConfig loads the configuration from configPath on top of the
// defaults. An empty configPath selects the file in the XDG config dir.
// A missing file is not an error.
func NewConfig(configPath string) (*Config, error) {
	c := Defaults()

	if configPath == "" {
		configPath = GetConfigPath()
	}
	c.path = configPath

	if err := c.load(configPath); err != nil {
		return c, err
	}

	c.expandEnv()

	if _, err := ParseColorMode(c.Color); err != nil {
		return c, err
	}
	if c.SortMode != Ascending && c.SortMode != Descending {
		return c, errors.New(text.Tf("invalid sort mode %q", c.SortMode))
	}

	return c, nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to configPath.
func (c *Config) Save(configPath string) error {
	marshalledinfo, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}

	marshalledinfo = append(marshalledinfo, '\n')
	if err := initDir(filepath.Dir(configPath)); err != nil {
		return err
	}

	in, err := os.OpenFile(configPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, text.T("failed to save config"))
	}
	defer in.Close()
	if _, err = in.Write(marshalledinfo); err != nil {
		return err
	}
	return in.Sync()
}

func (c *Config) AsJSONString() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "\t")
	if err := enc.Encode(c); err != nil {
		text.EPrintln(err)
	}
	return buf.String()
}

func (c *Config) expandEnv() {
	c.AURURL = os.ExpandEnv(c.AURURL)
	c.PacmanConf = os.ExpandEnv(c.PacmanConf)
	c.SortBy = os.ExpandEnv(c.SortBy)
	c.SortMode = os.ExpandEnv(c.SortMode)
	c.Color = os.ExpandEnv(c.Color)
}

func (c *Config) load(configPath string) error {
	if configPath == "" {
		return nil
	}

	cfile, err := os.Open(configPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.New(text.Tf("failed to open config file '%s': %s", configPath, err))
	}
	defer cfile.Close()

	err = json.NewDecoder(cfile).Decode(c)
	if err != nil {
		return errors.New(text.Tf("failed to read config file '%s': %s", configPath, err))
	}
	return nil
}
