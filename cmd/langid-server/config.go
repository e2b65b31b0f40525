package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Address      string `env:"LANGID_ADDRESS" envDefault:":8080" yaml:"address"`
	MinorityList string `env:"LANGID_MINORITY_LIST" yaml:"minority_list"`
	EnglishList  string `env:"LANGID_ENGLISH_LIST" yaml:"english_list"`
	MinorityTag  string `env:"LANGID_MINORITY_TAG" envDefault:"crk" yaml:"minority_tag"`
	EnglishTag   string `env:"LANGID_ENGLISH_TAG" envDefault:"eng" yaml:"english_tag"`
	BucketURL    string `env:"LANGID_BUCKET_URL" yaml:"bucket_url"`
	CacheSize    int    `env:"LANGID_CACHE_SIZE" envDefault:"4096" yaml:"cache_size"`
	ConfigFile   string `env:"LANGID_CONFIG" yaml:"-"`
}

// loadConfig reads settings from the environment, then lets an optional
// YAML manifest named by LANGID_CONFIG override them.
func loadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("can't parse environment: %w", err)
	}
	if config.ConfigFile != "" {
		content, err := os.ReadFile(config.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("can't read config file %s: %w", config.ConfigFile, err)
		}
		if err := yaml.Unmarshal(content, &config); err != nil {
			return nil, fmt.Errorf("can't parse config file %s: %w", config.ConfigFile, err)
		}
	}
	if config.MinorityList == "" || config.EnglishList == "" {
		return nil, errors.New("both LANGID_MINORITY_LIST and LANGID_ENGLISH_LIST must be set")
	}
	return &config, nil
}
