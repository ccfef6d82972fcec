// Package configloader builds flaglog configurations from environment variables,
// YAML documents and configuration files.
package configloader

import (
	"bytes"
	"strings"

	"github.com/go-viper/encoding/javaproperties"
	"github.com/hyp3rd/ewrap"
	"github.com/spf13/viper"

	"github.com/hyp3rd/flaglog"
	"github.com/hyp3rd/flaglog/internal/constants"
)

// legacyFormat is the viper config type of "KEY value" files. Java properties
// accept whitespace as the key/value separator and '#' comments.
const legacyFormat = "properties"

// FromEnv loads configuration sourced from environment variables using the provided prefix.
// Environment keys are normalized by uppercasing and replacing dots with underscores, so
// file.name is read from PREFIX_FILE_NAME.
func FromEnv(prefix string) (*flaglog.Config, error) {
	viperInstance := viper.New()

	err := bindEnvironment(viperInstance, normalizePrefix(prefix))
	if err != nil {
		return nil, err
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromYAML loads configuration from a YAML document provided as bytes.
func FromYAML(data []byte) (*flaglog.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read YAML configuration")
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

// FromFile loads configuration from a file whose format viper infers from the
// extension, and merges environment overrides using the default prefix.
func FromFile(path string) (*flaglog.Config, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigFile(path)

	return readFile(viperInstance, path)
}

// FromLegacyFile loads a line-based configuration file of "KEY value" pairs such as
//
//	LOGLEVEL 3
//	LOGTOFILE 1
//
// LOGLEVEL is read as a flag set and LOGTOFILE as a 0/1 switch for the file sink.
// Any other key known to FromYAML is accepted too. Environment overrides apply.
func FromLegacyFile(path string) (*flaglog.Config, error) {
	registry := viper.NewCodecRegistry()

	err := registry.RegisterCodec(legacyFormat, &javaproperties.Codec{})
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to register legacy configuration codec")
	}

	viperInstance := viper.NewWithOptions(viper.WithCodecRegistry(registry))
	viperInstance.SetConfigFile(path)
	viperInstance.SetConfigType(legacyFormat)

	return readFile(viperInstance, path)
}

func readFile(viperInstance *viper.Viper, path string) (*flaglog.Config, error) {
	err := bindEnvironment(viperInstance, constants.EnvPrefix)
	if err != nil {
		return nil, err
	}

	err = viperInstance.ReadInConfig()
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to read configuration file").
			WithMetadata("path", path)
	}

	raw, err := loadRawFromViper(viperInstance)
	if err != nil {
		return nil, err
	}

	return applyRaw(raw)
}

func loadRawFromViper(viperInstance *viper.Viper) (rawConfig, error) {
	var raw rawConfig

	for _, key := range allKeys() {
		if !viperInstance.IsSet(key) {
			continue
		}

		viperInstance.Set(key, viperInstance.Get(key))
	}

	err := viperInstance.Unmarshal(&raw)
	if err != nil {
		return rawConfig{}, ewrap.Wrap(err, "failed to decode configuration")
	}

	return raw, nil
}

func bindEnvironment(viperInstance *viper.Viper, prefix string) error {
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if prefix != "" {
		viperInstance.SetEnvPrefix(prefix)
	}

	viperInstance.AutomaticEnv()

	for _, key := range allKeys() {
		err := viperInstance.BindEnv(key)
		if err != nil {
			return ewrap.Wrap(err, "failed to bind environment key").
				WithMetadata("key", key).
				WithMetadata("prefix", prefix)
		}
	}

	return nil
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return constants.EnvPrefix
	}

	prefix = strings.TrimSuffix(prefix, "_")
	prefix = strings.ReplaceAll(prefix, "-", "_")

	return strings.ToUpper(prefix)
}
