package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Auth         AuthConfig
	Tracing      TracingConfig      `mapstructure:"tracing"`
	Log          LogConfig          `mapstructure:"log"`
	Achievements AchievementsConfig `mapstructure:"achievements"`
	Watch        WatchConfig        `mapstructure:"config"`

	// 运行时标志，由命令行参数设置
	ForceMigrate bool   `mapstructure:"-"`
	Seed         bool   `mapstructure:"-"`
	File         string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatabaseConfig 支持直接给出 URL，或者按字段拼接 DSN
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Name     string `mapstructure:"name"`
	Driver   string `mapstructure:"driver"`
	Host     string
	Port     int
	User     string
	Password string
	Charset  string
	LogSQL   bool `mapstructure:"log_sql"`
}

type AuthConfig struct {
	Scheme        string `mapstructure:"scheme"`
	Secret        string `mapstructure:"secret"`
	Issuer        string `mapstructure:"issuer"`
	ExpireSeconds int    `mapstructure:"expire_seconds"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type AchievementsConfig struct {
	Source     string `mapstructure:"source"`
	DemoPoints int    `mapstructure:"demo_points"`
}

type WatchConfig struct {
	Watch bool `mapstructure:"watch"`
}

const (
	AuthSchemePlaceholder = "placeholder"
	AuthSchemeJWT         = "jwt"

	PointsSourceDemo     = "demo"
	PointsSourceDatabase = "database"

	DefaultSecret = "creator-insight-demo-secret"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.port", 3306)

	v.SetDefault("auth.scheme", AuthSchemePlaceholder)
	v.SetDefault("auth.secret", DefaultSecret)
	v.SetDefault("auth.issuer", "creator-insight-portal")
	v.SetDefault("auth.expire_seconds", 3600)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "logs/app.log")

	v.SetDefault("achievements.source", PointsSourceDemo)
	v.SetDefault("achievements.demo_points", 1860)
}

// LoadConfig 读取 path 目录下的 config.yaml，文件不存在时只使用默认值和环境变量
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix("CREATOR_INSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Database
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("database.name", "DATABASE_NAME")
	v.BindEnv("database.driver", "DATABASE_DRIVER")

	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Auth
	v.BindEnv("auth.scheme", "AUTH_SCHEME")
	v.BindEnv("auth.secret", "AUTH_SECRET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}

	switch c.Auth.Scheme {
	case AuthSchemePlaceholder, AuthSchemeJWT:
	default:
		return fmt.Errorf("unknown auth scheme %q", c.Auth.Scheme)
	}

	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && c.Auth.Scheme == AuthSchemeJWT && len(c.Auth.Secret) < 32 {
		return fmt.Errorf("auth secret is too short (%d chars), must be at least 32 characters in release mode", len(c.Auth.Secret))
	}

	switch c.Achievements.Source {
	case PointsSourceDemo, PointsSourceDatabase:
	default:
		return fmt.Errorf("unknown achievements source %q", c.Achievements.Source)
	}

	if c.Achievements.DemoPoints < 0 {
		return fmt.Errorf("achievements.demo_points must not be negative")
	}

	if c.Auth.ExpireSeconds <= 0 {
		return fmt.Errorf("auth.expire_seconds must be positive")
	}

	return nil
}
