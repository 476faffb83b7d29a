package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cogwell/cogniscreen/internal/domain/scoring"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	DB      DBConfig       `yaml:"db"`
	Log     LogConfig      `yaml:"log"`
	Scoring scoring.Config `yaml:"scoring"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "cogniscreen.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Scoring: scoring.DefaultConfig(),
	}

	if path := os.Getenv("COGNISCREEN_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("COGNISCREEN_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("COGNISCREEN_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid COGNISCREEN_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("COGNISCREEN_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("COGNISCREEN_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Scoring.Validate(); err != nil {
		return Config{}, fmt.Errorf("scoring config: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
