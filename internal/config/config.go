package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config agrupa todo lo configurable del servicio.
// Precedencia: defaults < archivo YAML < env < flags (los aplica cmd/api).
type Config struct {
	Port string `yaml:"port"`

	// Vacío => catálogo in-memory.
	DBDSN string `yaml:"db_dsn"`

	// Vacío => sesiones in-memory.
	Redis RedisConfig `yaml:"redis"`

	// Secreto HS256 de los tokens de sesión (demo, no es un secreto real).
	TokenSecret string `yaml:"token_secret"`

	Latency LatencyConfig `yaml:"latency"`

	// Si viene BaseURL, el cliente remoto usa HTTP en vez del mock.
	Remote RemoteConfig `yaml:"remote"`

	Log LogConfig `yaml:"log"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LatencyConfig: demoras simuladas. Login ~1s, lecturas ~500ms, chat/booking/analytics ~1s.
type LatencyConfig struct {
	Login Duration `yaml:"login"`
	Fast  Duration `yaml:"fast"`
	Slow  Duration `yaml:"slow"`
}

type RemoteConfig struct {
	BaseURL string   `yaml:"base_url"`
	APIKey  string   `yaml:"api_key"`
	Timeout Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// Duration acepta "1s", "500ms" en YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func Default() Config {
	return Config{
		Port:        "8080",
		TokenSecret: "care-portals-demo-secret",
		Latency: LatencyConfig{
			Login: Duration(time.Second),
			Fast:  Duration(500 * time.Millisecond),
			Slow:  Duration(time.Second),
		},
		Remote: RemoteConfig{
			Timeout: Duration(5 * time.Second),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "care-portals",
		},
	}
}

// Load arma la config: defaults, luego el YAML (si path != ""), luego env.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *Duration) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = Duration(d)
		return nil
	}

	str("PORT", &cfg.Port)
	str("DB_DSN", &cfg.DBDSN)
	str("REDIS_ADDR", &cfg.Redis.Addr)
	str("REDIS_PASSWORD", &cfg.Redis.Password)
	if v, ok := lookup("REDIS_DB"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.Redis.DB = n
	}
	str("TOKEN_SECRET", &cfg.TokenSecret)
	str("REMOTE_BASE_URL", &cfg.Remote.BaseURL)
	str("REMOTE_API_KEY", &cfg.Remote.APIKey)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("APP_NAME", &cfg.Log.App)

	if err := dur("LOGIN_LATENCY", &cfg.Latency.Login); err != nil {
		return err
	}
	if err := dur("FETCH_LATENCY", &cfg.Latency.Fast); err != nil {
		return err
	}
	if err := dur("SLOW_LATENCY", &cfg.Latency.Slow); err != nil {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port required")
	}
	if strings.TrimSpace(c.TokenSecret) == "" {
		return errors.New("token secret required")
	}
	if c.Latency.Login < 0 || c.Latency.Fast < 0 || c.Latency.Slow < 0 {
		return errors.New("latency must be >= 0")
	}
	return nil
}
