// config предоставляет структуру конфигурации stories-сервиса
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env        string           `yaml:"env"        env:"ENV" env-default:"local"`
	HTTP       HTTPConfig       `yaml:"http"`
	HackerNews HackerNewsConfig `yaml:"hackernews"`
	Cache      CacheConfig      `yaml:"cache"`
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	Limits     LimitsConfig     `yaml:"limits"`
	Timeouts   TimeoutConfig    `yaml:"timeouts"`
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

// HackerNewsConfig — параметры доступа к апстриму Hacker News.
type HackerNewsConfig struct {
	// BaseURL — базовый адрес API без завершающего "/".
	BaseURL string `yaml:"base_url" env:"HN_BASE_URL" env-default:"https://hacker-news.firebaseio.com/v0"`
	// Timeout — таймаут одного HTTP-запроса к апстриму.
	Timeout time.Duration `yaml:"timeout" env:"HN_TIMEOUT" env-default:"10s"`
}

// CacheConfig — параметры кэша.
type CacheConfig struct {
	// TTL записей кэша: применяется и к списку идентификаторов, и к историям.
	TTL time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5m"`
}

// FetcherConfig — параметры конкурентной загрузки историй.
type FetcherConfig struct {
	// MaxConcurrent — потолок одновременных запросов к апстриму.
	MaxConcurrent int `yaml:"max_concurrent" env:"FETCH_MAX_CONCURRENT" env-default:"10"`
	// MaxItems — сколько идентификаторов из списка апстрима рассматривается
	// за один запрос (кап применяется до фильтрации по заголовку).
	MaxItems int `yaml:"max_items" env:"FETCH_MAX_ITEMS" env-default:"200"`
}

// LimitsConfig — серверные лимиты на выдачу.
type LimitsConfig struct {
	// Верхняя граница для page_size; превышение клампится.
	MaxPageSize int `yaml:"max_page_size" env:"MAX_PAGE_SIZE" env-default:"100"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"30s"`
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

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.HackerNews.BaseURL == "" {
		return fmt.Errorf("hackernews.base_url is required")
	}
	if c.HackerNews.Timeout <= 0 {
		return fmt.Errorf("hackernews.timeout must be > 0")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0")
	}
	if c.Fetcher.MaxConcurrent <= 0 {
		return fmt.Errorf("fetcher.max_concurrent must be > 0")
	}
	if c.Fetcher.MaxItems <= 0 {
		return fmt.Errorf("fetcher.max_items must be > 0")
	}
	if c.Limits.MaxPageSize <= 0 {
		return fmt.Errorf("limits.max_page_size must be > 0")
	}
	return nil
}
