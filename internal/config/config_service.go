package config

import (
	"anagram/internal/app"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env             string           `yaml:"env"`
	LogLevel        string           `yaml:"log_level"`
	LogDir          string           `yaml:"log_dir"`
	HttpPort        int              `yaml:"http_port"`
	ShutdownTimeout time.Duration    `yaml:"shutdown_timeout"`
	Dictionary      DictionaryConfig `yaml:"dictionary"`
	Normalization   app.Policy       `yaml:"normalization"`
}

type DictionaryConfig struct {
	Path         string `yaml:"path"`
	Encoding     string `yaml:"encoding"`
	Dedupe       bool   `yaml:"dedupe"`
	BuildWorkers int    `yaml:"build_workers"`
}

func Default() Config {
	return Config{
		Env:             "local",
		LogLevel:        "info",
		LogDir:          "logs",
		HttpPort:        8080,
		ShutdownTimeout: 5 * time.Second,
		Dictionary: DictionaryConfig{
			Path:     "mywordlist.txt",
			Encoding: "utf-8",
		},
	}
}

// LoadConfig reads the yaml file at path on top of Default.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.HttpPort <= 0 || c.HttpPort > 65535 {
		errs = append(errs, fmt.Errorf("http_port %d out of range", c.HttpPort))
	}
	if c.Dictionary.Path == "" {
		errs = append(errs, errors.New("dictionary.path is required"))
	}
	if c.Dictionary.BuildWorkers < 0 {
		errs = append(errs, fmt.Errorf("dictionary.build_workers must not be negative, got %d", c.Dictionary.BuildWorkers))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("shutdown_timeout must not be negative, got %s", c.ShutdownTimeout))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func MustLoad() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		log.Fatal("CONFIG_PATH env is required")
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
