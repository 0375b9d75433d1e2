package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type CORSConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposeHeaders    []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// LoadConfig reads the optional yaml config file and .env file, overlays
// environment variables, and applies defaults. Both paths may point at
// files that do not exist; the environment alone is enough to run.
func LoadConfig(configPath string, envPath string) (*Config, error) {
	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, err
			}
		}
	}

	v := viper.New()
	v.SetDefault("server.port", "3001")
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 2048)
	v.SetDefault("cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Origin", "Content-Type"})
	v.SetDefault("cors.expose_headers", []string{"Content-Type"})
	v.SetDefault("cors.allow_credentials", true)

	v.AutomaticEnv()
	if err := v.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, err
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Anthropic.APIKey == "" {
		return errors.New("ANTHROPIC_API_KEY is required")
	}
	return nil
}
