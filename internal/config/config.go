// config предоставляет структуру конфигурации blog-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Postgres PostgresConfig `yaml:"postgres"`
	Cache    CacheConfig    `yaml:"cache"`
	Limits   LimitsConfig   `yaml:"limits"`
	S3       S3Config       `yaml:"s3"`
	Cover    CoverConfig    `yaml:"cover"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

type PostgresConfig struct {
	URL string `yaml:"url" env:"POSTGRES" env-required:"true"`
}

// CacheConfig — TTL записей кэша публичных чтений и период фоновой очистки.
type CacheConfig struct {
	SweepInterval time.Duration `yaml:"sweep_interval" env:"CACHE_SWEEP_INTERVAL" env-default:"5m"`
	PostsTTL      time.Duration `yaml:"posts_ttl" env:"CACHE_POSTS_TTL" env-default:"5m"`
	PostTTL       time.Duration `yaml:"post_ttl" env:"CACHE_POST_TTL" env-default:"10m"`
	TaxonomyTTL   time.Duration `yaml:"taxonomy_ttl" env:"CACHE_TAXONOMY_TTL" env-default:"15m"`
	RelatedTTL    time.Duration `yaml:"related_ttl" env:"CACHE_RELATED_TTL" env-default:"10m"`
	PopularTTL    time.Duration `yaml:"popular_ttl" env:"CACHE_POPULAR_TTL" env-default:"15m"`
}

// LimitsConfig — размер страницы для списков публикаций.
type LimitsConfig struct {
	Default int `yaml:"default" env:"LIMITS_DEFAULT" env-default:"10"`
	Max     int `yaml:"max" env:"LIMITS_MAX" env-default:"50"`
}

// S3Config — хранилище обложек. Пустой Endpoint отключает обложки.
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"covers"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// Enabled сообщает, сконфигурировано ли S3-хранилище.
func (s S3Config) Enabled() bool {
	return s.Endpoint != ""
}

type CoverConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"COVER_MAX_SIZE_BYTES" env-default:"5242880"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"COVER_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp,image/gif"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Request  time.Duration `yaml:"request" env:"REQUEST_TIMEOUT" env-default:"5s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	switch {
	case path != "":
		if err := readFile(path, &cfg); err != nil {
			return nil, err
		}
	case os.Getenv("CONFIG_PATH") != "":
		if err := readFile(os.Getenv("CONFIG_PATH"), &cfg); err != nil {
			return nil, err
		}
	case fileExists("local.yaml"):
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readFile(p string, cfg *Config) error {
	if _, err := os.Stat(p); err != nil {
		return fmt.Errorf("config file %q stat failed: %w", p, err)
	}
	if err := cleanenv.ReadConfig(p, cfg); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func (c *Config) validate() error {
	if c.Postgres.URL == "" {
		return errors.New("postgres.url is required")
	}

	if c.HTTP.Host == "" {
		return errors.New("http.host is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return errors.New("http.port must be a valid TCP port (1..65535)")
	}

	ttls := map[string]time.Duration{
		"cache.sweep_interval": c.Cache.SweepInterval,
		"cache.posts_ttl":      c.Cache.PostsTTL,
		"cache.post_ttl":       c.Cache.PostTTL,
		"cache.taxonomy_ttl":   c.Cache.TaxonomyTTL,
		"cache.related_ttl":    c.Cache.RelatedTTL,
		"cache.popular_ttl":    c.Cache.PopularTTL,
	}
	for name, d := range ttls {
		if d < 0 {
			return fmt.Errorf("%s must be >= 0", name)
		}
	}

	if c.Limits.Default <= 0 {
		return errors.New("limits.default must be > 0")
	}

	if c.Limits.Max < c.Limits.Default {
		return errors.New("limits.max must be >= limits.default")
	}

	if c.S3.Enabled() {
		if c.S3.RootUser == "" || c.S3.RootPassword == "" {
			return errors.New("s3.root_user and s3.root_password are required when s3.endpoint is set")
		}

		if c.S3.Bucket == "" {
			return errors.New("s3.bucket is required")
		}

		if c.S3.PresignTTL <= 0 {
			return errors.New("s3.presign_ttl must be > 0")
		}

		if c.Cover.MaxSizeBytes <= 0 {
			return errors.New("cover.max_size_bytes must be > 0")
		}

		if len(c.Cover.AllowedContentTypes) == 0 {
			return errors.New("cover.allowed_content_types must not be empty")
		}
	}

	if c.Timeouts.Request < 0 || c.Timeouts.Shutdown < 0 {
		return errors.New("timeouts must be >= 0")
	}

	return nil
}
