package sechub

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/configuration"
	"github.com/sechub/sechub-cli/internals/cli/ui/fakeui"
	"github.com/secrethub/secrethub-go/internals/assert"
)

func TestConfigLoader_Apply(t *testing.T) {
	cases := map[string]struct {
		config       string
		args         []string
		env          map[string]string
		region       string
		profile      string
		maxRetries   int
		format       outputFormat
		usePager     bool
		pagerCommand string
		err          error
	}{
		"no configuration file": {
			maxRetries: aws.UseServiceDefaultRetries,
		},
		"configuration file": {
			config: "version: 1\n" +
				"region: eu-west-1\n" +
				"profile: audit\n" +
				"max_retries: 5\n" +
				"output: yaml\n" +
				"pager: true\n" +
				"pager_command: less -R\n",
			region:       "eu-west-1",
			profile:      "audit",
			maxRetries:   5,
			format:       formatYAML,
			usePager:     true,
			pagerCommand: "less -R",
		},
		"flags take precedence": {
			config:     "region: eu-west-1\noutput: yaml\n",
			args:       []string{"--region", "us-east-1", "-o", "text"},
			region:     "us-east-1",
			maxRetries: aws.UseServiceDefaultRetries,
			format:     formatText,
		},
		"environment takes precedence": {
			config:     "region: eu-west-1\nprofile: audit\n",
			env:        map[string]string{"SECHUB_REGION": "ap-south-1"},
			region:     "ap-south-1",
			profile:    "audit",
			maxRetries: aws.UseServiceDefaultRetries,
		},
		"unsupported version": {
			config: "version: 2\nregion: eu-west-1\n",
			err:    configuration.ErrUnsupportedVersion(2),
		},
		"invalid output format": {
			config: "output: xml\n",
			err:    ErrInvalidOutputFormat("xml"),
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// Arrange
			home := t.TempDir()
			if tc.config != "" {
				dir := filepath.Join(home, defaultConfigDirName)
				assert.OK(t, os.MkdirAll(dir, 0700))
				assert.OK(t, ioutil.WriteFile(filepath.Join(dir, defaultConfigFilename), []byte(tc.config), 0600))
			}
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			app := cli.NewApp(ApplicationName, "test")
			loader := &ConfigLoader{homeDir: func() (string, error) { return home, nil }}
			factory := NewClientFactory()
			output := NewOutput(fakeui.NewIO())
			loader.Register(app)
			factory.Register(app)
			output.Register(app)
			app.Root.AddPersistentPreRunE(loader.Apply(app, factory, output))
			app.Command("noop", "Do nothing.").BindAction(func(context.Context) error { return nil })

			// Act
			err := app.Run(context.Background(), append([]string{"noop"}, tc.args...))

			// Assert
			assert.Equal(t, err, tc.err)
			if tc.err != nil {
				return
			}
			assert.Equal(t, factory.Region, tc.region)
			assert.Equal(t, factory.Profile, tc.profile)
			assert.Equal(t, factory.MaxRetries, tc.maxRetries)
			assert.Equal(t, output.format, tc.format)
			assert.Equal(t, output.usePager, tc.usePager)
			assert.Equal(t, output.pagerCommand, tc.pagerCommand)
		})
	}
}

func TestConfigLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	assert.OK(t, ioutil.WriteFile(path, []byte("endpoint_url: http://localhost:4566\n"), 0600))

	cases := map[string]struct {
		loader   *ConfigLoader
		expected Config
		err      error
	}{
		"custom path": {
			loader:   &ConfigLoader{path: path},
			expected: Config{EndpointURL: "http://localhost:4566"},
		},
		"missing custom path": {
			loader: &ConfigLoader{path: filepath.Join(dir, "missing.yml")},
			err:    configuration.ErrFileNotFound,
		},
		"missing default path": {
			loader: &ConfigLoader{homeDir: func() (string, error) { return dir, nil }},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			config, err := tc.loader.Load()

			assert.Equal(t, err, tc.err)
			assert.Equal(t, config, tc.expected)
		})
	}
}
