package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Skills  SkillsConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `validate:"required,numeric"`
	Env  string `validate:"oneof=development production test"`
}

type SkillsConfig struct {
	File string `validate:"required"`
}

type StorageConfig struct {
	MaxFileSize int64 `validate:"gt=0"`
}

// multipartOverhead leaves room for form framing so oversized files reach the upload handler.
const multipartOverhead = 1 << 20

// BodyLimit is the request body cap for the HTTP server.
func (s StorageConfig) BodyLimit() int {
	return int(s.MaxFileSize) + multipartOverhead
}

type LogConfig struct {
	Level string `validate:"oneof=trace debug info warn warning error fatal panic"`
	File  string
}

// Load reads .env (if present) and the process environment. The returned
// flag reports whether a .env file was found.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Skills: SkillsConfig{
			File: getEnv("SKILLS_FILE", "./skills.txt"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}, envLoaded
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}
