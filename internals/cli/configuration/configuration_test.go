package configuration

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/assert"
)

type testConfig struct {
	Region     string        `yaml:"region"`
	MaxRetries int           `yaml:"max_retries"`
	Timeout    time.Duration `yaml:"timeout"`
}

func TestReadFromFile(t *testing.T) {
	cases := map[string]struct {
		content  string
		expected testConfig
		err      error
	}{
		"yaml": {
			content:  "region: eu-west-1\nmax_retries: 5\n",
			expected: testConfig{Region: "eu-west-1", MaxRetries: 5},
		},
		"json": {
			content:  `{"region": "us-east-2", "timeout": "30s"}`,
			expected: testConfig{Region: "us-east-2", Timeout: 30 * time.Second},
		},
		"weakly typed": {
			content:  "max_retries: \"3\"\n",
			expected: testConfig{MaxRetries: 3},
		},
		"version 1": {
			content:  "version: 1\nregion: eu-west-1\n",
			expected: testConfig{Region: "eu-west-1"},
		},
		"unsupported version": {
			content: "version: 2\nregion: eu-west-1\n",
			err:     ErrUnsupportedVersion(2),
		},
		"malformed": {
			content: "region: [eu-west-1\n",
			err:     ErrDecodeFailed,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			assert.NilError(t, ioutil.WriteFile(path, []byte(tc.content), 0600))

			var actual testConfig
			err := ReadFromFile(path, &actual)

			if tc.err != nil {
				assert.Error(t, err, tc.err.Error())
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, actual, tc.expected)
		})
	}
}

func TestReadFromFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	assert.NilError(t, ioutil.WriteFile(path, []byte("regoin: eu-west-1\n"), 0600))

	var actual testConfig
	err := ReadFromFile(path, &actual)

	assert.ErrorContains(t, err, "regoin")
}

func TestReadFromFile_NotFound(t *testing.T) {
	var actual testConfig
	err := ReadFromFile(filepath.Join(t.TempDir(), "missing.yml"), &actual)

	assert.Equal(t, err, ErrFileNotFound)
}
