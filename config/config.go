package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type CatalogConfig struct {
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	CacheTTL int    `yaml:"cache_ttl_seconds"`
}

type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

type TranscriptConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type OtelConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Service  string `yaml:"service"`
}

type Config struct {
	DB         DBConfig         `yaml:"db"`
	Redis      RedisConfig      `yaml:"redis"`
	MQ         MQConfig         `yaml:"mq"`
	JWT        JWTConfig        `yaml:"jwt"`
	Server     ServerConfig     `yaml:"server"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	LLM        LLMConfig        `yaml:"llm"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Otel       OtelConfig       `yaml:"otel"`
}

func Load() *Config {
	f, err := os.Open("config.yaml")
	if err != nil {
		log.Fatalf("failed to open config.yaml: %v", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("failed to decode config.yaml: %v", err)
	}

	overrideFromEnv(&cfg)

	return &cfg
}

// overrideFromEnv applies production env-var overrides on top of the file.
func overrideFromEnv(cfg *Config) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}

	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.MQ.URL = url
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if baseURL := os.Getenv("CATALOG_BASE_URL"); baseURL != "" {
		cfg.Catalog.BaseURL = baseURL
	}
	if apiKey := os.Getenv("CATALOG_API_KEY"); apiKey != "" {
		cfg.Catalog.APIKey = apiKey
	}

	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		cfg.LLM.BaseURL = baseURL
	}
	if apiKey := os.Getenv("LLM_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.LLM.Model = model
	}

	if baseURL := os.Getenv("TRANSCRIPT_BASE_URL"); baseURL != "" {
		cfg.Transcript.BaseURL = baseURL
	}
	if apiKey := os.Getenv("TRANSCRIPT_API_KEY"); apiKey != "" {
		cfg.Transcript.APIKey = apiKey
	}

	if endpoint := os.Getenv("OTEL_ENDPOINT"); endpoint != "" {
		cfg.Otel.Endpoint = endpoint
		cfg.Otel.Enabled = true
	}
}
