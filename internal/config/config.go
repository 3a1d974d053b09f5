package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Database         DatabaseConfig   `json:"database"`
	JWTSecret        string           `json:"jwt_secret"`
	Port             int              `json:"port"`
	LogConfig        logger.LogConfig `json:"log_config"`
	Mail             MailConfig       `json:"mail"`
	Gateway          GatewayConfig    `json:"gateway"`
	OTP              OTPConfig        `json:"otp"`
	CORSAllowlist    []string         `json:"cors_allowlist"`
	RateLimitSeconds int              `json:"rate_limit_seconds"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type MailConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type GatewayConfig struct {
	StripeAPIKey string `json:"stripe_api_key"`
	Currency     string `json:"currency"`
}

type OTPConfig struct {
	TTLMinutes        int    `json:"ttl_minutes"`
	Capacity          int    `json:"capacity"`
	SweepGraceMinutes int    `json:"sweep_grace_minutes"`
	SweepSpec         string `json:"sweep_spec"`
}

// Properties are the settings exposed to clients without authentication.
type Properties struct {
	OTPTTLMinutes int    `json:"otp_ttl_minutes"`
	Currency      string `json:"currency"`
}

func (c *Config) Properties() Properties {
	return Properties{
		OTPTTLMinutes: c.OTP.TTLMinutes,
		Currency:      c.Gateway.Currency,
	}
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	if c.Database.DSN == "" && c.Database.Host == "" {
		return fmt.Errorf("database.dsn or database.host is required")
	}
	if c.Database.DSN == "" && c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("port is required")
	}
	if c.LogConfig.Level == "" {
		c.LogConfig.Level = "info"
	}
	if c.Mail.Host == "" || c.Mail.Port == 0 || strings.TrimSpace(c.Mail.From) == "" {
		return fmt.Errorf("mail.host/port/from are required")
	}
	if c.Gateway.StripeAPIKey == "" {
		return fmt.Errorf("gateway.stripe_api_key is required")
	}
	if c.Gateway.Currency == "" {
		c.Gateway.Currency = "usd"
	}
	c.Gateway.Currency = strings.ToLower(c.Gateway.Currency)
	if c.OTP.TTLMinutes <= 0 {
		c.OTP.TTLMinutes = 10
	}
	if c.OTP.Capacity <= 0 {
		c.OTP.Capacity = 10000
	}
	if c.OTP.SweepGraceMinutes <= 0 {
		c.OTP.SweepGraceMinutes = 60
	}
	if c.OTP.SweepSpec == "" {
		c.OTP.SweepSpec = "*/5 * * * *"
	}
	if c.RateLimitSeconds < 0 {
		c.RateLimitSeconds = 0
	}
	return nil
}
