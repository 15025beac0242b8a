package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type OTPConfig struct {
	Store       string `yaml:"store"` // "memory" or "redis"
	TTL         string `yaml:"ttl"`
	Length      int    `yaml:"length"`
	MaxAttempts int    `yaml:"max_attempts"`
}

type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

type UploadConfig struct {
	Dir         string `yaml:"dir"`
	MaxFileSize int64  `yaml:"max_file_size"`
}

type ConfigFile struct {
	App          AppConfig    `yaml:"app"`
	Mongo        MongoConfig  `yaml:"mongo"`
	Redis        RedisConfig  `yaml:"redis"`
	JWT          JWTConfig    `yaml:"jwt"`
	OTP          OTPConfig    `yaml:"otp"`
	SMTP         SMTPConfig   `yaml:"smtp"`
	Upload       UploadConfig `yaml:"upload"`
	AdminDomains []string     `yaml:"admin_domains"`
}

type Config struct {
	Port           string
	GinMode        string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	JWTIssuer      string
	AccessTTL      time.Duration
	OTPStore       string
	OTPTTL         time.Duration
	OTPLength      int
	OTPMaxAttempts int
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	SMTPFromName   string
	UploadDir      string
	MaxFileSize    int64
	AdminDomains   []string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(configFile.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	// Secrets and deployment endpoints can be overridden from the environment.
	cfg := &Config{
		Port:           env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:        configFile.App.GinMode,
		MongoURI:       env("MONGO_URI", configFile.Mongo.URI),
		MongoDatabase:  env("MONGO_DB", configFile.Mongo.Database),
		RedisAddr:      env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:  env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:        configFile.Redis.DB,
		JWTSecret:      env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:      configFile.JWT.Issuer,
		AccessTTL:      accTTL,
		OTPStore:       configFile.OTP.Store,
		OTPTTL:         otpTTL,
		OTPLength:      configFile.OTP.Length,
		OTPMaxAttempts: configFile.OTP.MaxAttempts,
		SMTPHost:       env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:       configFile.SMTP.Port,
		SMTPUsername:   env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:   env("SMTP_PASSWORD", configFile.SMTP.Password),
		SMTPFromEmail:  env("SMTP_FROM_EMAIL", configFile.SMTP.FromEmail),
		SMTPFromName:   configFile.SMTP.FromName,
		UploadDir:      configFile.Upload.Dir,
		MaxFileSize:    configFile.Upload.MaxFileSize,
		AdminDomains:   normalizeDomains(configFile.AdminDomains),
	}

	if p := os.Getenv("SMTP_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	}
	if d := os.Getenv("ADMIN_DOMAINS"); d != "" {
		cfg.AdminDomains = normalizeDomains(strings.Split(d, ","))
	}

	if cfg.OTPStore == "" {
		cfg.OTPStore = "memory"
	}
	if cfg.OTPStore != "memory" && cfg.OTPStore != "redis" {
		return nil, fmt.Errorf("invalid otp store %q: must be memory or redis", cfg.OTPStore)
	}
	if cfg.OTPLength <= 0 {
		cfg.OTPLength = 6
	}
	if cfg.OTPMaxAttempts <= 0 {
		cfg.OTPMaxAttempts = 3
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 10 << 20
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}
