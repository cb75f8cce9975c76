package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"folio/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	MarginsConfig struct {
		Top    float64 `yaml:"top" validate:"gte=0"`
		Right  float64 `yaml:"right" validate:"gte=0"`
		Bottom float64 `yaml:"bottom" validate:"gte=0"`
		Left   float64 `yaml:"left" validate:"gte=0"`
	}

	// ChromeConfig controls header/footer defaults for newly created library
	// content and formats used when dynamic fields are rendered.
	ChromeConfig struct {
		Height     float64 `yaml:"height" validate:"gt=0"`
		DateFormat string  `yaml:"date_format" validate:"required"`
		TimeFormat string  `yaml:"time_format" validate:"required"`
	}

	DocumentConfig struct {
		Title       string                `yaml:"title" validate:"required"`
		Author      string                `yaml:"author,omitempty"`
		Orientation common.Orientation    `yaml:"orientation" validate:"gte=0"`
		Numbering   common.NumberingStyle `yaml:"numbering" validate:"gte=0"`
		Margins     MarginsConfig         `yaml:"margins"`
		Chrome      ChromeConfig          `yaml:"chrome"`
	}

	StorageConfig struct {
		Path string `yaml:"path" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Storage   StorageConfig  `yaml:"storage"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
