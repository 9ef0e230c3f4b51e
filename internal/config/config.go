package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DataSourceFile reads the dataset from a JSON or YAML file.
	DataSourceFile = "file"
	// DataSourceMongo reads the dataset from a MongoDB collection.
	DataSourceMongo = "mongo"
)

// CompareSessionConfig controls compare session tokens and their lifetime.
type CompareSessionConfig struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr               string
	DataSource         string
	DatasetPath        string
	MongoURI           string
	MongoDatabase      string
	BusinessCollection string
	Timeout            time.Duration
	AllowedOrigins     []string
	CompareSession     CompareSessionConfig
	SuggestRateLimit   float64
	SuggestBurst       int
	ServerLog          *log.Logger
}

// fileConfig は CONFIG_FILE で指定された TOML の構造。未指定の項目はデフォルト値のまま。
type fileConfig struct {
	Server struct {
		Addr           string   `toml:"addr"`
		AllowedOrigins []string `toml:"allowed_origins"`
	} `toml:"server"`
	Data struct {
		Source  string `toml:"source"`
		Dataset string `toml:"dataset"`
	} `toml:"data"`
	Mongo struct {
		URI            string `toml:"uri"`
		Database       string `toml:"database"`
		Collection     string `toml:"collection"`
		ConnectTimeout string `toml:"connect_timeout"`
	} `toml:"mongo"`
	Compare struct {
		Secret string `toml:"secret"`
		Issuer string `toml:"issuer"`
		TTL    string `toml:"ttl"`
	} `toml:"compare"`
	Suggest struct {
		RateLimit float64 `toml:"rate_limit"`
		Burst     int     `toml:"burst"`
	} `toml:"suggest"`
}

// Load reads CONFIG_FILE (optional) and environment variables and returns a
// fully populated Config. Invalid configuration is fatal.
func Load() Config {
	cfg, err := LoadFrom(os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}

	cfg.ServerLog.Printf("loaded config: addr=%q source=%q dataset=%q origins=%v", cfg.Addr, cfg.DataSource, cfg.DatasetPath, cfg.AllowedOrigins)
	return cfg
}

// LoadFrom builds a Config from defaults, then the TOML file named by
// CONFIG_FILE, then environment values returned by lookup.
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Addr:               ":8080",
		DataSource:         DataSourceFile,
		DatasetPath:        "data/businesses.json",
		MongoURI:           "mongodb://mongo:27017",
		MongoDatabase:      "fitness-directory",
		BusinessCollection: "businesses",
		Timeout:            10 * time.Second,
		AllowedOrigins:     []string{"*"},
		CompareSession: CompareSessionConfig{
			Issuer: "fitness-directory-api",
			TTL:    2 * time.Hour,
		},
		SuggestRateLimit: 10,
		SuggestBurst:     20,
		ServerLog:        log.New(os.Stdout, "[fitness-directory-api] ", log.LstdFlags|log.Lshortfile),
	}

	if path := envValue(lookup, "CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}

	cfg.DataSource = strings.ToLower(strings.TrimSpace(cfg.DataSource))
	switch cfg.DataSource {
	case DataSourceFile, DataSourceMongo:
	default:
		return Config{}, fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", DataSourceFile, DataSourceMongo, cfg.DataSource)
	}
	if len(cfg.CompareSession.Secret) == 0 {
		return Config{}, errors.New("COMPARE_SESSION_SECRET must be configured")
	}
	if cfg.CompareSession.TTL <= 0 {
		return Config{}, fmt.Errorf("COMPARE_SESSION_TTL must be positive, got %s", cfg.CompareSession.TTL)
	}
	if cfg.SuggestRateLimit <= 0 || cfg.SuggestBurst <= 0 {
		return Config{}, errors.New("SUGGEST_RATE_LIMIT and SUGGEST_BURST must be positive")
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setString(&cfg.Addr, fc.Server.Addr)
	if origins := cleanList(fc.Server.AllowedOrigins); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}
	setString(&cfg.DataSource, fc.Data.Source)
	setString(&cfg.DatasetPath, fc.Data.Dataset)
	setString(&cfg.MongoURI, fc.Mongo.URI)
	setString(&cfg.MongoDatabase, fc.Mongo.Database)
	setString(&cfg.BusinessCollection, fc.Mongo.Collection)
	if err := setDuration(&cfg.Timeout, "mongo.connect_timeout", fc.Mongo.ConnectTimeout); err != nil {
		return err
	}
	if secret := strings.TrimSpace(fc.Compare.Secret); secret != "" {
		cfg.CompareSession.Secret = []byte(secret)
	}
	setString(&cfg.CompareSession.Issuer, fc.Compare.Issuer)
	if err := setDuration(&cfg.CompareSession.TTL, "compare.ttl", fc.Compare.TTL); err != nil {
		return err
	}
	if fc.Suggest.RateLimit > 0 {
		cfg.SuggestRateLimit = fc.Suggest.RateLimit
	}
	if fc.Suggest.Burst > 0 {
		cfg.SuggestBurst = fc.Suggest.Burst
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	setString(&cfg.Addr, envValue(lookup, "HTTP_ADDR"))
	setString(&cfg.DataSource, envValue(lookup, "DATA_SOURCE"))
	setString(&cfg.DatasetPath, envValue(lookup, "DATASET_PATH"))
	setString(&cfg.MongoURI, envValue(lookup, "MONGO_URI"))
	setString(&cfg.MongoDatabase, envValue(lookup, "MONGO_DB"))
	setString(&cfg.BusinessCollection, envValue(lookup, "BUSINESS_COLLECTION"))
	if origins := parseList(envValue(lookup, "API_ALLOWED_ORIGINS")); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}
	if err := setDuration(&cfg.Timeout, "MONGO_CONNECT_TIMEOUT", envValue(lookup, "MONGO_CONNECT_TIMEOUT")); err != nil {
		return err
	}
	if secret := envValue(lookup, "COMPARE_SESSION_SECRET"); secret != "" {
		cfg.CompareSession.Secret = []byte(secret)
	}
	setString(&cfg.CompareSession.Issuer, envValue(lookup, "COMPARE_SESSION_ISSUER"))
	if err := setDuration(&cfg.CompareSession.TTL, "COMPARE_SESSION_TTL", envValue(lookup, "COMPARE_SESSION_TTL")); err != nil {
		return err
	}
	if raw := envValue(lookup, "SUGGEST_RATE_LIMIT"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("SUGGEST_RATE_LIMIT: %w", err)
		}
		cfg.SuggestRateLimit = parsed
	}
	if raw := envValue(lookup, "SUGGEST_BURST"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("SUGGEST_BURST: %w", err)
		}
		cfg.SuggestBurst = parsed
	}
	return nil
}

func envValue(lookup func(string) (string, bool), key string) string {
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, key, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = parsed
	return nil
}

func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	return cleanList(strings.Split(raw, ","))
}

func cleanList(parts []string) []string {
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}
