package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Marketplace struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"marketplace"`

	Session struct {
		Backend       string `yaml:"backend"` // memory, redis
		RedisAddr     string `yaml:"redis_addr"`
		RedisPassword string `yaml:"redis_password"`
		RedisDB       int    `yaml:"redis_db"`
		TTLMinutes    int    `yaml:"ttl_minutes"`
	} `yaml:"session"`

	Notifications struct {
		PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	} `yaml:"notifications"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	baseURL := os.Getenv("MARKETPLACE_URL")

	if baseURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	// Environment-driven configuration
	cfg.Marketplace.BaseURL = baseURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Session.Backend = os.Getenv("SESSION_BACKEND")
	cfg.Session.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.Session.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if db := os.Getenv("REDIS_DB"); db != "" {
		cfg.Session.RedisDB, _ = strconv.Atoi(db)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4100
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Marketplace.TimeoutSeconds == 0 {
		cfg.Marketplace.TimeoutSeconds = 15
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 12 * 60
	}
	if cfg.Notifications.PollIntervalSeconds == 0 {
		// The dashboards poll the notification list every 5 seconds
		cfg.Notifications.PollIntervalSeconds = 5
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
