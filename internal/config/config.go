package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Storage struct {
		Type           string `yaml:"type"`             // s3, cloudflare_r2
		Bucket         string `yaml:"bucket"`           // Bucket name
		Region         string `yaml:"region"`           // For S3
		AccessKey      string `yaml:"access_key"`       // For S3/R2
		SecretKey      string `yaml:"secret_key"`       // For S3/R2
		Endpoint       string `yaml:"endpoint"`         // For R2 or custom S3
		BaseURL        string `yaml:"base_url"`         // Public URL base (CDN), optional
		SignTTLSeconds int    `yaml:"sign_ttl_seconds"` // Presigned URL lifetime
	} `yaml:"storage"`

	Shopify struct {
		APIKey     string `yaml:"api_key"`     // App client id (session token audience)
		APISecret  string `yaml:"api_secret"`  // App client secret (session token signing key)
		AdminToken string `yaml:"admin_token"` // Admin API access token
		APIVersion string `yaml:"api_version"` // e.g. 2024-01
	} `yaml:"shopify"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // Max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // Allowed MIME types
	} `yaml:"upload"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
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

	// Environment-variable mode (tests, containers)
	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.Bucket = os.Getenv("AWS_BUCKET")
	cfg.Storage.Region = os.Getenv("AWS_REGION")
	cfg.Storage.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Storage.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.BaseURL = os.Getenv("STORAGE_BASE_URL")
	cfg.Storage.SignTTLSeconds, _ = strconv.Atoi(os.Getenv("STORAGE_SIGN_TTL"))

	cfg.Shopify.APIKey = os.Getenv("SHOPIFY_API_KEY")
	cfg.Shopify.APISecret = os.Getenv("SHOPIFY_API_SECRET")
	cfg.Shopify.AdminToken = os.Getenv("SHOPIFY_ADMIN_TOKEN")
	cfg.Shopify.APIVersion = os.Getenv("SHOPIFY_API_VERSION")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults fills the optional values both load paths share.
func applyDefaults(cfg *Config) {
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "s3"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 100 * 1024 * 1024 // 100MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"video/mp4", "video/quicktime", "video/webm",
		}
	}
	if cfg.Storage.SignTTLSeconds == 0 {
		cfg.Storage.SignTTLSeconds = 60
	}
	if cfg.Shopify.APIVersion == "" {
		cfg.Shopify.APIVersion = "2024-01"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
