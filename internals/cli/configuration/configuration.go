// Package configuration reads YAML or JSON configuration files into structs.
package configuration

import (
	"io/ioutil"
	"os"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/secrethub/secrethub-go/internals/errio"
	yaml "gopkg.in/yaml.v2"
)

var (
	errConfig = errio.Namespace("configuration")

	// ErrDecodeFailed is given when the config cannot be decoded.
	ErrDecodeFailed = errConfig.Code("decode_fail").Error("failed to decode config")
	// ErrFileNotFound is given when the config file cannot be found.
	ErrFileNotFound = errConfig.Code("not_found").Error("config file not found")
	// ErrUnsupportedVersion is given when the config file has a version this program does not understand.
	ErrUnsupportedVersion = errConfig.Code("unsupported_version").ErrorPref("config file version %d is not supported")
)

// ReadConfigurationDataFromFile retrieves the data and attempts to read the config as a ConfigMap
// from a file.
func ReadConfigurationDataFromFile(path string) (ConfigMap, []byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}

	configMap, err := ReadMap(data)
	return configMap, data, err
}

// ReadMap attempts to unmarshal a []byte it into the dest map.
// Both json and yaml are supported
func ReadMap(data []byte) (ConfigMap, error) {
	var dest ConfigMap

	// Supports both json and yaml
	if err := yaml.Unmarshal(data, &dest); err != nil {
		return nil, ErrDecodeFailed
	}

	return dest, nil
}

// ParseMap uses mapstructure to convert a ConfigMap into a struct
//
// For example, the following YAML:
//     region: eu-west-1
//     max_retries: 5
//
// Can be loaded in a struct of type:
//     type Config struct {
//         Region     string `yaml:"region"`
//         MaxRetries int    `yaml:"max_retries"`
//     }
//
// decodeHook is used to convert non-standard types into the correct format
func ParseMap(src ConfigMap, dst interface{}) error {
	c := mapstructure.DecoderConfig{
		TagName:          "yaml",
		Result:           dst,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       decodeHook,
	}
	decoder, err := mapstructure.NewDecoder(&c)
	if err != nil {
		return errio.Error(err)
	}

	return decoder.Decode(map[string]interface{}(src))
}

// decodeHook adds extra decoding functionality to parsing the map.
func decodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t == reflect.TypeOf(time.Duration(0)) && f == reflect.TypeOf("") {
		return time.ParseDuration(data.(string))
	}

	return data, nil
}

// ReadFromFile reads the configuration file at the given path into dst.
// Only version 1 files are understood.
func ReadFromFile(path string, dst interface{}) error {
	configMap, _, err := ReadConfigurationDataFromFile(path)
	if err != nil {
		return err
	}

	version, err := configMap.GetVersion()
	if err != nil {
		return err
	}
	if version != 1 {
		return ErrUnsupportedVersion(version)
	}
	delete(configMap, "version")

	return ParseMap(configMap, dst)
}

func readFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}

	return ioutil.ReadFile(path)
}

// ConfigMap is the type used for configurations that are still in a map format
type ConfigMap map[string]interface{}

// GetVersion returns the version of the configuration file.
// If it is not set, it is assumed that is configuration version 1.
func (c ConfigMap) GetVersion() (int, error) {
	version, ok := c["version"]
	if !ok {
		// Version not set
		return 1, nil
	}

	ret, ok := version.(int)

	if !ok {
		return 0, errConfig.Code("version_wrong_type").Errorf("config value `version` has wrong type %T (actual) != int (expected)", version)
	}

	return ret, nil
}
