// config реализует конфигурацию feed-service: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/robfig/cron/v3"
)

// Бэкенды журнала просмотров.
const (
	ViewsBackendPostgres = "postgres"
	ViewsBackendMongo    = "mongo"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	DB       DBConfig       `yaml:"db"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Views    ViewsConfig    `yaml:"views"`
	Recorder RecorderConfig `yaml:"recorder"`
	Boosts   BoostsConfig   `yaml:"boosts"`
	Ranking  RankingConfig  `yaml:"ranking"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
	CORS     CORSConfig     `yaml:"cors"`
}

// HTTPConfig — публичный REST API ленты, health и metrics.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// GRPCConfig — gRPC health-сервер.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// DBConfig — подключение к PostgreSQL.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// MongoConfig — MongoDB для журнала просмотров (views.backend=mongo).
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL"`
	// ViewTTL — срок хранения записи о просмотре после последнего обновления.
	ViewTTL time.Duration `yaml:"view_ttl" env:"MONGO_VIEW_TTL" env-default:"2160h"`
}

// RedisConfig — кэш последнего успешно прочитанного списка объявлений.
// Пустой URL отключает кэш.
type RedisConfig struct {
	URL         string        `yaml:"url" env:"REDIS_URL"`
	SnapshotKey string        `yaml:"snapshot_key" env:"REDIS_SNAPSHOT_KEY" env-default:"feed:listings:active"`
	SnapshotTTL time.Duration `yaml:"snapshot_ttl" env:"REDIS_SNAPSHOT_TTL" env-default:"10m"`
	// SnapshotRefresh — минимальный интервал между фоновыми обновлениями снимка.
	SnapshotRefresh time.Duration `yaml:"snapshot_refresh" env:"REDIS_SNAPSHOT_REFRESH" env-default:"30s"`
}

// AuthConfig — проверка access-токенов зрителя (HS256).
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer    string        `yaml:"issuer" env:"JWT_ISSUER"`
	Audience  []string      `yaml:"audience" env:"JWT_AUDIENCE"`
	Leeway    time.Duration `yaml:"leeway" env:"JWT_LEEWAY" env-default:"30s"`
}

// ViewsConfig — куда пишется журнал просмотров.
type ViewsConfig struct {
	Backend string `yaml:"backend" env:"VIEWS_BACKEND" env-default:"postgres"`
}

// RecorderConfig — фоновая запись просмотров и интереса.
type RecorderConfig struct {
	QueueSize     int           `yaml:"queue_size" env:"RECORDER_QUEUE_SIZE" env-default:"1024"`
	Workers       int           `yaml:"workers" env:"RECORDER_WORKERS" env-default:"4"`
	RatePerSecond float64       `yaml:"rate_per_second" env:"RECORDER_RATE" env-default:"200"`
	Burst         int           `yaml:"burst" env:"RECORDER_BURST" env-default:"50"`
	WriteTimeout  time.Duration `yaml:"write_timeout" env:"RECORDER_WRITE_TIMEOUT" env-default:"2s"`
}

// BoostsConfig — периодическое снятие истёкшего продвижения.
type BoostsConfig struct {
	Disabled  bool   `yaml:"disabled" env:"BOOSTS_SWEEP_DISABLED"`
	SweepSpec string `yaml:"sweep_spec" env:"BOOSTS_SWEEP_SPEC" env-default:"@every 5m"`
}

// RankingConfig — параметры построения ленты, доступные для настройки.
type RankingConfig struct {
	DefaultRadiusMiles float64 `yaml:"default_radius_miles" env:"RANKING_DEFAULT_RADIUS" env-default:"5"`
	// CandidateLimit — сколько самых новых объявлений читать на запрос; 0 — все.
	// Продвигаемые объявления читаются всегда, сверх лимита.
	CandidateLimit    int           `yaml:"candidate_limit" env:"RANKING_CANDIDATE_LIMIT" env-default:"0"`
	EndingSoonWindow  time.Duration `yaml:"ending_soon_window" env:"RANKING_ENDING_SOON_WINDOW" env-default:"24h"`
	NewArrivalsWindow time.Duration `yaml:"new_arrivals_window" env:"RANKING_NEW_ARRIVALS_WINDOW" env-default:"48h"`
	TopInterests      int           `yaml:"top_interests" env:"RANKING_TOP_INTERESTS" env-default:"3"`
}

// TimeoutConfig — сервисные таймауты.
type TimeoutConfig struct {
	// Service — общий дедлайн обработки запроса.
	Service time.Duration `yaml:"service" env:"SERVICE" env-default:"5s"`
	// Shutdown — сколько ждать завершения серверов и фоновых задач.
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig — разрешённые источники браузерных запросов.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
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
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
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
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be one of local|dev|prod, got %q", c.Env)
	}

	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	switch c.Views.Backend {
	case ViewsBackendPostgres:
	case ViewsBackendMongo:
		if c.Mongo.URL == "" {
			return fmt.Errorf("mongo.url is required for views.backend=mongo")
		}
	default:
		return fmt.Errorf("views.backend must be postgres or mongo, got %q", c.Views.Backend)
	}

	if c.Mongo.ViewTTL < 0 {
		return fmt.Errorf("mongo.view_ttl must be >= 0")
	}

	if c.Redis.URL != "" && c.Redis.SnapshotTTL <= 0 {
		return fmt.Errorf("redis.snapshot_ttl must be > 0")
	}

	if c.Redis.SnapshotRefresh < 0 {
		return fmt.Errorf("redis.snapshot_refresh must be >= 0")
	}

	r := c.Recorder
	if r.QueueSize <= 0 || r.Workers <= 0 {
		return fmt.Errorf("recorder.queue_size and recorder.workers must be > 0")
	}

	if r.RatePerSecond <= 0 || r.Burst <= 0 {
		return fmt.Errorf("recorder.rate_per_second and recorder.burst must be > 0")
	}

	if r.WriteTimeout <= 0 {
		return fmt.Errorf("recorder.write_timeout must be > 0")
	}

	if !c.Boosts.Disabled {
		if _, err := cron.ParseStandard(c.Boosts.SweepSpec); err != nil {
			return fmt.Errorf("boosts.sweep_spec is invalid: %w", err)
		}
	}

	rk := c.Ranking
	if rk.DefaultRadiusMiles <= 0 {
		return fmt.Errorf("ranking.default_radius_miles must be > 0")
	}

	if rk.CandidateLimit < 0 {
		return fmt.Errorf("ranking.candidate_limit must be >= 0")
	}

	if rk.EndingSoonWindow <= 0 || rk.NewArrivalsWindow <= 0 {
		return fmt.Errorf("ranking windows must be > 0")
	}

	if rk.TopInterests <= 0 {
		return fmt.Errorf("ranking.top_interests must be > 0")
	}

	if c.Timeouts.Service <= 0 || c.Timeouts.Shutdown <= 0 {
		return fmt.Errorf("timeouts.service and timeouts.shutdown must be > 0")
	}

	return nil
}
