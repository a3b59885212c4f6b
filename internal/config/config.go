// Package config loads the optional prefgen.yaml project file. The project
// file carries the same information as the generate flags (input document,
// output paths, target packages) so repeated builds don't need a long command
// line; explicit flags always win over file values.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
)

// Config represents the project configuration.
type Config struct {
	Input    string        `yaml:"input"`
	Outputs  OutputConfig  `yaml:"outputs"`
	Packages PackageConfig `yaml:"packages"`
}

// OutputConfig holds the destination path per output format. Every output is
// independently optional; an empty path means that format is not generated.
type OutputConfig struct {
	Layout   string `yaml:"layout,omitempty"`
	Resource string `yaml:"resource,omitempty"`
	Settings string `yaml:"settings,omitempty"`
	Activity string `yaml:"activity,omitempty"`
}

// PackageConfig holds the Java package names for the generated classes.
type PackageConfig struct {
	Settings string `yaml:"settings,omitempty"`
	Activity string `yaml:"activity,omitempty"`
}

// Any reports whether at least one output is configured.
func (o OutputConfig) Any() bool {
	return o.Layout != "" || o.Resource != "" || o.Settings != "" || o.Activity != ""
}

// Load loads configuration from the specified file. Environment variable
// references in the YAML are expanded after a best-effort .env load.
func Load(configPath string) (*Config, error) {
	// Don't fail if .env doesn't exist; it is only a convenience.
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerrors.New(xerrors.CategoryConfig, xerrors.SeverityFatal,
				fmt.Sprintf("configuration file not found: %s", configPath))
		}
		return nil, xerrors.Wrap(err, xerrors.CategoryConfig, xerrors.SeverityFatal,
			"failed to read config file")
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, xerrors.Wrap(err, xerrors.CategoryConfig, xerrors.SeverityFatal,
			"failed to unmarshal config")
	}

	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return xerrors.New(xerrors.CategoryConfig, xerrors.SeverityError,
			fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath))
	}

	exampleConfig := Config{
		Input: "settings.adoc",
		Outputs: OutputConfig{
			Layout:   "res/xml/settings.xml",
			Resource: "res/values/strings.xml",
			Settings: "src/com/example/app/Settings.java",
			Activity: "src/com/example/app/SettingsActivity.java",
		},
		Packages: PackageConfig{
			Settings: "com.example.app",
			Activity: "com.example.app",
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return xerrors.Wrap(err, xerrors.CategoryConfig, xerrors.SeverityFatal,
			"failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return xerrors.Wrap(err, xerrors.CategoryFileSystem, xerrors.SeverityFatal,
			"failed to write config file")
	}

	return nil
}
