package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"golang.org/x/exp/slices"
)

type Configuration struct {
	Lenient   bool   `json:"lenient"`
	Format    string `json:"format"`
	Highlight string `json:"highlight"`
	Style     string `json:"style"`
}

const (
	FORMAT_PLAIN    = "plain"
	FORMAT_NUMBERED = "numbered"
	FORMAT_JSON     = "json"
)

var allowedFormats = []string{
	FORMAT_PLAIN,
	FORMAT_NUMBERED,
	FORMAT_JSON,
}

var DEFAULT_CONFIG_FILE_PATH = "readlines.json"

// relative to the XDG config directories
var XDG_CONFIG_FILE_PATH = "readlines/readlines.json"

var defaultConfig = Configuration{
	Format: FORMAT_PLAIN,
	Style:  "dracula",
}

func LoadConfiguration(filename string) (Configuration, error) {
	var c = defaultConfig

	// omitting the config file is not an error if no config path was specified,
	// but a config file in the user's XDG config dir is still honored
	if filename == DEFAULT_CONFIG_FILE_PATH && !fileExists(filename) {
		found, err := xdg.SearchConfigFile(XDG_CONFIG_FILE_PATH)
		if err != nil {
			return defaultConfig, nil
		}
		filename = found
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return Configuration{}, err
	}

	err = json.Unmarshal(raw, &c)
	if err != nil {
		return Configuration{}, fmt.Errorf("decoding %s: %w", filename, err)
	}

	err = c.Validate()
	if err != nil {
		return Configuration{}, fmt.Errorf("validating %s: %w", filename, err)
	}

	return c, nil
}

func (c Configuration) Validate() error {
	if !slices.Contains(allowedFormats, c.Format) {
		return fmt.Errorf("unknown format %s, expected one of %v", c.Format, allowedFormats)
	}

	return nil
}

func fileExists(file string) bool {
	_, err := os.Stat(file)
	if err != nil {
		return false
	}

	return true
}
