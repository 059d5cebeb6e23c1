// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	TelegramToken      string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	DBPath             string `yaml:"db_path" env:"JOBBOT_DB_PATH"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds" env:"JOBBOT_HTTP_TIMEOUT_SECONDS"`
}

func Load() *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if path := os.Getenv("JOBBOT_DB_PATH"); path != "" {
		cfg.DBPath = path
	}

	if timeout := os.Getenv("JOBBOT_HTTP_TIMEOUT_SECONDS"); timeout != "" {
		seconds, err := strconv.Atoi(timeout)
		if err != nil {
			log.Fatalf("Invalid JOBBOT_HTTP_TIMEOUT_SECONDS: %v", err)
		}
		cfg.HTTPTimeoutSeconds = seconds
	}

	//Set default values if not set
	if cfg.DBPath == "" {
		cfg.DBPath = "jobs.db"
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		cfg.HTTPTimeoutSeconds = 15
	}

	//Validate required fields
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	return cfg
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
