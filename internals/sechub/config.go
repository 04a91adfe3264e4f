package sechub

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/configuration"
	"github.com/spf13/cobra"
)

const (
	// defaultConfigDirName is the name of the configuration directory in the home directory.
	defaultConfigDirName = ".sechub"
	// defaultConfigFilename is the name of the configuration file in the configuration directory.
	defaultConfigFilename = "config.yml"
)

// Config holds the settings that can be stored in the configuration file.
// Flags and environment variables take precedence over them.
type Config struct {
	Region       string `yaml:"region"`
	Profile      string `yaml:"profile"`
	EndpointURL  string `yaml:"endpoint_url"`
	MaxRetries   *int   `yaml:"max_retries"`
	Output       string `yaml:"output"`
	Pager        *bool  `yaml:"pager"`
	PagerCommand string `yaml:"pager_command"`
}

// ConfigLoader reads the configuration file.
type ConfigLoader struct {
	path    string
	homeDir func() (string, error)
}

// NewConfigLoader creates a loader for the configuration file in the home directory.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		homeDir: homedir.Dir,
	}
}

// Register the flags for configuration on a cli application.
func (l *ConfigLoader) Register(app *cli.App) {
	app.PersistentFlags().StringVar(&l.path, "config-file", "", "The path to the configuration file. Defaults to ~/"+defaultConfigDirName+"/"+defaultConfigFilename+".")
}

// Load reads the configuration file. A missing file at the default location
// results in an empty configuration, but a missing file that was explicitly
// configured is an error.
func (l *ConfigLoader) Load() (Config, error) {
	var config Config

	path := l.path
	if path == "" {
		home, err := l.homeDir()
		if err != nil {
			return config, ErrCannotFindHomeDir(err)
		}
		path = filepath.Join(home, defaultConfigDirName, defaultConfigFilename)
	}

	err := configuration.ReadFromFile(path, &config)
	if err == configuration.ErrFileNotFound && l.path == "" {
		return Config{}, nil
	}
	return config, err
}

// Apply returns a function that loads the configuration file and uses its
// values for the global flags that were set neither on the command-line nor
// in the environment.
func (l *ConfigLoader) Apply(app *cli.App, clientFactory *ClientFactory, output *Output) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		config, err := l.Load()
		if err != nil {
			return err
		}

		unset := func(name string) bool {
			return !app.Root.Flag(name).Changed()
		}

		if config.Region != "" && unset("region") {
			clientFactory.Region = config.Region
		}
		if config.Profile != "" && unset("profile") {
			clientFactory.Profile = config.Profile
		}
		if config.EndpointURL != "" && unset("endpoint-url") {
			clientFactory.EndpointURL = config.EndpointURL
		}
		if config.MaxRetries != nil && unset("max-retries") {
			clientFactory.MaxRetries = *config.MaxRetries
		}
		if config.Output != "" && unset("output") {
			err = output.format.Set(config.Output)
			if err != nil {
				return err
			}
		}
		if config.Pager != nil && unset("pager") {
			output.usePager = *config.Pager
		}
		if config.PagerCommand != "" && unset("pager-command") {
			output.pagerCommand = config.PagerCommand
		}
		return nil
	}
}
