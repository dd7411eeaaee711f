package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultVAPIDTTL         = 24 * 60 * 60
	defaultSendTimeout      = 10 * time.Second
	defaultMaxParallel      = 16
	defaultMaxPerDay        = 20
	defaultCooldownMinutes  = 5
	defaultCombineThreshold = 60
	defaultStaleAfter       = 90 * 24 * time.Hour
	defaultCleanupBatchSize = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Identity configuration for verifying caller bearer tokens
	Identity IdentityConfig `json:"identity" yaml:"identity"`

	// VAPID configuration for signing Web Push requests
	VAPID VAPIDConfig `json:"vapid" yaml:"vapid"`

	// Dispatch configuration for the delivery fan-out
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// RateLimit holds the defaults applied before per-user overrides
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Cleanup configuration for the stale subscription sweep
	Cleanup CleanupConfig `json:"cleanup" yaml:"cleanup"`

	// PubSub configuration for queued dispatch jobs
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// IdentityConfig defines how bearer tokens issued by the identity provider are verified
type IdentityConfig struct {
	// HMAC secret the identity provider signs access tokens with
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Expected audience claim, skipped when empty
	Audience string `json:"audience" yaml:"audience"`
}

// VAPIDConfig defines the application server keypair and contact used for Web Push
type VAPIDConfig struct {
	PublicKey  string `json:"publicKey" yaml:"publicKey"`
	PrivateKey string `json:"privateKey" yaml:"privateKey"`

	// Contact identifier sent in the VAPID JWT, e.g. "mailto:ops@example.com"
	Subject string `json:"subject" yaml:"subject"`

	// TTL in seconds the push service keeps an undelivered message
	TTL int `json:"ttl" yaml:"ttl"`
}

// DispatchConfig defines delivery fan-out limits
type DispatchConfig struct {
	// Timeout for a single subscription send
	SendTimeout time.Duration `json:"sendTimeout" yaml:"sendTimeout"`

	// Maximum concurrent sends per dispatch
	MaxParallel int `json:"maxParallel" yaml:"maxParallel"`
}

// RateLimitConfig defines default per-user rate limits
type RateLimitConfig struct {
	MaxPerDay               int `json:"maxPerDay" yaml:"maxPerDay"`
	CooldownMinutes         int `json:"cooldownMinutes" yaml:"cooldownMinutes"`
	CombineThresholdSeconds int `json:"combineThresholdSeconds" yaml:"combineThresholdSeconds"`
}

// CleanupConfig defines the stale subscription sweep
type CleanupConfig struct {
	// Subscriptions unused for longer than this are removed
	StaleAfter time.Duration `json:"staleAfter" yaml:"staleAfter"`

	// Number of rows removed per delete call
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Cron expression for the worker's scheduled sweep, empty disables it
	Schedule string `json:"schedule" yaml:"schedule"`
}

// PubSubConfig defines Pub/Sub configuration for job publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	if err := loadInto(cfg, currEnv, configPath...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadInto decodes the config file and environment over cfg. Fields absent
// from both keep the value cfg already holds.
func loadInto[T any](cfg *T, currEnv string, configPath ...string) error {
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return nil
}

func New() (*Config, error) {
	cfg := newDefaultConfig()
	if err := loadInto(cfg, "config", "config", "../config", "../../config"); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// newDefaultConfig seeds the limits where zero is a meaningful setting, so
// only a missing key falls back to the default.
func newDefaultConfig() *Config {
	cfg := &Config{}
	cfg.RateLimit.CooldownMinutes = defaultCooldownMinutes
	cfg.RateLimit.CombineThresholdSeconds = defaultCombineThreshold

	return cfg
}

// applyDefaults fills every unset tunable with its documented default.
// A cooldown or combine window of 0 disables that rule; only negative values
// are replaced.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.VAPID.TTL <= 0 {
		cfg.VAPID.TTL = defaultVAPIDTTL
	}
	if cfg.Dispatch.SendTimeout <= 0 {
		cfg.Dispatch.SendTimeout = defaultSendTimeout
	}
	if cfg.Dispatch.MaxParallel <= 0 {
		cfg.Dispatch.MaxParallel = defaultMaxParallel
	}
	if cfg.RateLimit.MaxPerDay <= 0 {
		cfg.RateLimit.MaxPerDay = defaultMaxPerDay
	}
	if cfg.RateLimit.CooldownMinutes < 0 {
		cfg.RateLimit.CooldownMinutes = defaultCooldownMinutes
	}
	if cfg.RateLimit.CombineThresholdSeconds < 0 {
		cfg.RateLimit.CombineThresholdSeconds = defaultCombineThreshold
	}
	if cfg.Cleanup.StaleAfter <= 0 {
		cfg.Cleanup.StaleAfter = defaultStaleAfter
	}
	if cfg.Cleanup.BatchSize <= 0 {
		cfg.Cleanup.BatchSize = defaultCleanupBatchSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
