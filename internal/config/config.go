package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port          int
	LogLevel      string
	DB            DB
	Delivery      Delivery
	ProviderRetry ProviderRetry
	Kafka         Kafka
	RateLimit     RateLimit
	Pprof         Pprof
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Delivery stores delivery option resolution settings.
type Delivery struct {
	// OptionsTTL is how long a resolved set is trusted before the next read refreshes it.
	OptionsTTL      time.Duration
	ProviderTimeout time.Duration
	Providers       []Provider
	// ExclusionPolicyURL is optional; empty means nothing is excluded.
	ExclusionPolicyURL string
}

// Provider is an external delivery provider endpoint.
type Provider struct {
	Name string
	URL  string
}

// ProviderRetry stores provider retry settings.
type ProviderRetry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Kafka stores broker settings. Empty brokers disable messaging.
type Kafka struct {
	Brokers       []string
	GroupID       string
	CheckoutTopic string
	EventsTopic   string
}

// RateLimit stores HTTP rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores debug server settings. Empty Addr disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:          defaultPort,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		DB:            defaultDB,
		Delivery:      defaultDelivery,
		ProviderRetry: defaultProviderRetry,
		Kafka:         defaultKafka,
		RateLimit:     defaultRateLimit,
	}

	var err error
	if cfg.Port, err = intEnv("PORT", cfg.Port); err != nil {
		return nil, err
	}

	cfg.DB.Host = getenv("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = getenv("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = getenv("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = getenv("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = getenv("POSTGRES_DB", cfg.DB.Name)
	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT %q: %w", cfg.DB.Port, err)
	}

	if cfg.Delivery.OptionsTTL, err = durationEnv("DELIVERY_OPTIONS_TTL", cfg.Delivery.OptionsTTL); err != nil {
		return nil, err
	}
	if cfg.Delivery.ProviderTimeout, err = durationEnv("DELIVERY_PROVIDER_TIMEOUT", cfg.Delivery.ProviderTimeout); err != nil {
		return nil, err
	}
	if cfg.Delivery.Providers, err = parseProviders(os.Getenv("DELIVERY_PROVIDERS")); err != nil {
		return nil, err
	}
	cfg.Delivery.ExclusionPolicyURL = strings.TrimSpace(os.Getenv("DELIVERY_EXCLUSION_POLICY_URL"))

	if cfg.ProviderRetry.MaxAttempts, err = intEnv("PROVIDER_RETRY_MAX_ATTEMPTS", cfg.ProviderRetry.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.ProviderRetry.BaseDelay, err = durationEnv("PROVIDER_RETRY_BASE_DELAY", cfg.ProviderRetry.BaseDelay); err != nil {
		return nil, err
	}
	if cfg.ProviderRetry.MaxDelay, err = durationEnv("PROVIDER_RETRY_MAX_DELAY", cfg.ProviderRetry.MaxDelay); err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.GroupID = getenv("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.CheckoutTopic = getenv("KAFKA_CHECKOUT_TOPIC", cfg.Kafka.CheckoutTopic)
	cfg.Kafka.EventsTopic = getenv("KAFKA_EVENTS_TOPIC", cfg.Kafka.EventsTopic)

	if cfg.RateLimit, err = loadRateLimit(cfg.RateLimit); err != nil {
		return nil, err
	}

	cfg.Pprof = Pprof{
		Addr: strings.TrimSpace(os.Getenv("PPROF_ADDR")),
		User: os.Getenv("PPROF_USER"),
		Pass: os.Getenv("PPROF_PASSWORD"),
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.DurationVar(&cfg.Delivery.OptionsTTL, "delivery-options-ttl", cfg.Delivery.OptionsTTL,
		"how long resolved delivery options are trusted")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Delivery.OptionsTTL <= 0 {
		return fmt.Errorf("invalid delivery options ttl: %s", c.Delivery.OptionsTTL)
	}
	if c.Delivery.ProviderTimeout <= 0 {
		return fmt.Errorf("invalid provider timeout: %s", c.Delivery.ProviderTimeout)
	}
	if c.ProviderRetry.MaxAttempts < 1 {
		return fmt.Errorf("invalid provider retry attempts: %d", c.ProviderRetry.MaxAttempts)
	}
	return nil
}

func loadRateLimit(rl RateLimit) (RateLimit, error) {
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_ENABLED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return rl, fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		rl.Enabled = b
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rl, fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		rl.Rate = f
	}
	var err error
	if rl.Burst, err = intEnv("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return rl, err
	}
	if rl.TTL, err = durationEnv("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return rl, err
	}
	if rl.MaxBuckets, err = intEnv("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return rl, err
	}
	return rl, nil
}

// parseProviders parses "name=url,name=url".
func parseProviders(raw string) ([]Provider, error) {
	items := splitList(raw)
	out := make([]Provider, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		name, rawURL, ok := strings.Cut(item, "=")
		name, rawURL = strings.TrimSpace(name), strings.TrimSpace(rawURL)
		if !ok || name == "" || rawURL == "" || strings.Contains(name, ":") {
			return nil, fmt.Errorf("invalid provider entry %q", item)
		}
		if _, err := url.ParseRequestURI(rawURL); err != nil {
			return nil, fmt.Errorf("invalid provider url %q: %w", rawURL, err)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate provider %q", name)
		}
		seen[name] = struct{}{}
		out = append(out, Provider{Name: name, URL: rawURL})
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
