package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)

var OctovalueHomeDir = func() string {
	dir, err := homedir.Expand("~/.octovalue")
	if err != nil {
		logrus.Warnf("couldn't get user home directory, using working directory: %s", err)
		return ".octovalue"
	}
	return dir
}()

func DefaultPath() string {
	return filepath.Join(OctovalueHomeDir, "octovalue.yml")
}

type Config struct {
	Output   string                 `yaml:"output"`
	LogLevel string                 `yaml:"logLevel"`
	LogFile  bool                   `yaml:"logFile"`
	Formats  map[string]interface{} `yaml:"formats"`
}

func Default() *Config {
	return &Config{
		Output:   OutputTable,
		LogLevel: logrus.WarnLevel.String(),
		Formats:  map[string]interface{}{},
	}
}

// Read loads the configuration at path, or at DefaultPath if path is empty.
// A missing file yields the defaults.
func Read(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "couldn't decode yaml configuration")
	}
	if cfg.Formats == nil {
		cfg.Formats = map[string]interface{}{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Output {
	case OutputTable, OutputJSON, OutputCSV:
	default:
		return errors.Errorf("invalid output '%s', expected %s, %s or %s", cfg.Output, OutputTable, OutputJSON, OutputCSV)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	return nil
}

func (cfg *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid log level")
	}
	return level, nil
}

// FormatOptions returns the options of the given output format, e.g. formats.table.
func (cfg *Config) FormatOptions(format string) map[string]interface{} {
	options, err := GetMap(cfg.Formats, format, WithDefault(map[string]interface{}{}))
	if err != nil {
		logrus.Warnf("ignoring options of format %s: %s", format, err)
		return map[string]interface{}{}
	}
	return options
}
