package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultHistoryDir = "historydata"
	defaultCSVPath    = "conversions.csv"
	defaultTXTPath    = "conversions.txt"
)

type Config struct {
	HistoryDir      string
	CSVPath         string
	TXTPath         string
	AcceptLowercase bool
}

type configTmp struct {
	HistoryDir      string `yaml:"history_dir,omitempty"`
	CSVPath         string `yaml:"csv_path,omitempty"`
	TXTPath         string `yaml:"txt_path,omitempty"`
	AcceptLowercase *bool  `yaml:"accept_lowercase,omitempty"`
}

// Get returns the configuration from the yaml file at path, or defaults
// when path is empty. Missing yaml fields fall back to defaults.
func Get(path string) (Config, error) {
	cfg := Config{
		HistoryDir:      defaultHistoryDir,
		CSVPath:         defaultCSVPath,
		TXTPath:         defaultTXTPath,
		AcceptLowercase: true,
	}
	if path == "" {
		return cfg, nil
	}

	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "error read config %s", path)
	}
	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, errors.Wrap(err, "error parse yaml config")
	}

	if tmp.HistoryDir != "" {
		cfg.HistoryDir = tmp.HistoryDir
	}
	if tmp.CSVPath != "" {
		cfg.CSVPath = tmp.CSVPath
	}
	if tmp.TXTPath != "" {
		cfg.TXTPath = tmp.TXTPath
	}
	if tmp.AcceptLowercase != nil {
		cfg.AcceptLowercase = *tmp.AcceptLowercase
	}
	return cfg, nil
}
