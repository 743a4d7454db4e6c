// Package config loads notequiz settings from defaults, an optional YAML
// file and NOTEQUIZ_* environment variables, in that order of precedence.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "notequiz.yaml"

// Backend modes.
const (
	ModeHTTP  = "http"
	ModeLocal = "local"
)

// Cache drivers.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheFile   = "file"
)

type Config struct {
	Backend BackendConfig `yaml:"backend" mapstructure:"backend"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Quiz    QuizConfig    `yaml:"quiz" mapstructure:"quiz"`
	Notes   NotesConfig   `yaml:"notes" mapstructure:"notes"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	UI      UIConfig      `yaml:"ui" mapstructure:"ui"`
}

type BackendConfig struct {
	URL     string        `yaml:"url" mapstructure:"url"`
	Mode    string        `yaml:"mode" mapstructure:"mode"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

type CacheConfig struct {
	Driver        string        `yaml:"driver" mapstructure:"driver"`
	RedisAddr     string        `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisPassword string        `yaml:"redis_password" mapstructure:"redis_password"`
	RedisDB       int           `yaml:"redis_db" mapstructure:"redis_db"`
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Prefix        string        `yaml:"prefix" mapstructure:"prefix"`
	// Dir holds the entries of the file driver.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// EncryptionKey is a base64 AES-256 key. When set, cached summaries are
	// stored encrypted.
	EncryptionKey string   `yaml:"encryption_key" mapstructure:"encryption_key"`
	FallbackKeys  []string `yaml:"fallback_keys" mapstructure:"fallback_keys"`
}

// Keys decodes EncryptionKey and FallbackKeys. active is nil when no key is set.
func (c CacheConfig) Keys() (active []byte, fallback [][]byte, err error) {
	if c.EncryptionKey == "" {
		if len(c.FallbackKeys) > 0 {
			return nil, nil, errors.New("cache.fallback_keys requires cache.encryption_key")
		}
		return nil, nil, nil
	}
	if active, err = decodeKey(c.EncryptionKey); err != nil {
		return nil, nil, fmt.Errorf("cache.encryption_key: %w", err)
	}
	for i, k := range c.FallbackKeys {
		key, err := decodeKey(k)
		if err != nil {
			return nil, nil, fmt.Errorf("cache.fallback_keys[%d]: %w", i, err)
		}
		fallback = append(fallback, key)
	}
	return active, fallback, nil
}

func decodeKey(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("expected 32 bytes, got %d", len(key))
	}
	return key, nil
}

type QuizConfig struct {
	MaxQuestions int `yaml:"max_questions" mapstructure:"max_questions"`
	// Seed fixes question generation. Zero picks a random seed.
	Seed uint64 `yaml:"seed" mapstructure:"seed"`
}

type NotesConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

type UIConfig struct {
	Plain bool `yaml:"plain" mapstructure:"plain"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Backend: BackendConfig{URL: "http://127.0.0.1:5000", Mode: ModeHTTP},
		Server:  ServerConfig{Addr: ":5000"},
		Cache: CacheConfig{
			Driver:    CacheMemory,
			RedisAddr: "localhost:6379",
			TTL:       24 * time.Hour,
			Prefix:    "notequiz:summary:",
		},
		Quiz: QuizConfig{MaxQuestions: 6},
		Log:  LogConfig{Level: "info"},
	}
}

// envKeys maps environment variables to dotted config keys.
var envKeys = map[string]string{
	"NOTEQUIZ_BACKEND_URL":        "backend.url",
	"NOTEQUIZ_BACKEND_MODE":       "backend.mode",
	"NOTEQUIZ_BACKEND_TIMEOUT":    "backend.timeout",
	"NOTEQUIZ_SERVER_ADDR":        "server.addr",
	"NOTEQUIZ_CACHE_DRIVER":       "cache.driver",
	"NOTEQUIZ_REDIS_ADDR":         "cache.redis_addr",
	"NOTEQUIZ_REDIS_PASSWORD":     "cache.redis_password",
	"NOTEQUIZ_REDIS_DB":           "cache.redis_db",
	"NOTEQUIZ_CACHE_TTL":          "cache.ttl",
	"NOTEQUIZ_CACHE_PREFIX":       "cache.prefix",
	"NOTEQUIZ_CACHE_KEY":          "cache.encryption_key",
	"NOTEQUIZ_CACHE_DIR":          "cache.dir",
	"NOTEQUIZ_QUIZ_MAX_QUESTIONS": "quiz.max_questions",
	"NOTEQUIZ_QUIZ_SEED":          "quiz.seed",
	"NOTEQUIZ_NOTES_DIR":          "notes.dir",
	"NOTEQUIZ_LOG_LEVEL":          "log.level",
	"NOTEQUIZ_UI_PLAIN":           "ui.plain",
}

// Load builds the configuration. An empty path reads DefaultFile when present;
// an explicit path must exist.
func Load(path string) (*Config, error) {
	raw := map[string]any{}

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", file, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}

	for env, key := range envKeys {
		if val, ok := os.LookupEnv(env); ok {
			setPath(raw, key, val)
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend.Mode {
	case ModeHTTP, ModeLocal:
	default:
		errs = append(errs, fmt.Errorf("backend.mode must be %q or %q, got %q", ModeHTTP, ModeLocal, c.Backend.Mode))
	}
	if c.Backend.Mode == ModeHTTP && c.Backend.URL == "" {
		errs = append(errs, errors.New("backend.url is required in http mode"))
	}
	if c.Backend.Timeout < 0 {
		errs = append(errs, errors.New("backend.timeout must not be negative"))
	}
	switch c.Cache.Driver {
	case CacheNone, CacheMemory, CacheRedis, CacheFile:
	default:
		errs = append(errs, fmt.Errorf("cache.driver must be one of none, memory, redis, file; got %q", c.Cache.Driver))
	}
	if _, _, err := c.Cache.Keys(); err != nil {
		errs = append(errs, err)
	}
	if c.Quiz.MaxQuestions < 1 {
		errs = append(errs, errors.New("quiz.max_questions must be at least 1"))
	}
	return errors.Join(errs...)
}

// setPath assigns val at a dotted key, creating nested maps as needed.
func setPath(m map[string]any, key string, val any) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = val
}
