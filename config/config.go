// Package config loads the typed application configuration from YAML files
// with environment variable overrides.
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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Trigger configuration for the scheduled-job endpoints
	Trigger *TriggerConfig `json:"trigger" yaml:"trigger"`

	// Feeds configuration for the upstream recall sources
	Feeds *FeedsConfig `json:"feeds" yaml:"feeds"`

	// Pipeline configuration for matching and expiry checks
	Pipeline *PipelineConfig `json:"pipeline" yaml:"pipeline"`

	// Push configuration for the outbound push gateway
	Push *PushConfig `json:"push" yaml:"push"`

	// PubSub configuration for run-event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TriggerConfig defines configuration for the scheduler-facing job endpoints.
type TriggerConfig struct {
	// Static bearer token expected on job invocations; empty disables the check.
	AuthToken string `json:"authToken" yaml:"authToken"`
}

// FeedsConfig defines configuration for the upstream recall feed clients.
type FeedsConfig struct {
	// User-Agent header sent to every upstream feed.
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	// Per-request timeout applied to upstream feed calls.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Trailing window adapters fetch; overlaps the 6h cadence on purpose
	// so a missed run is covered by the next one.
	Window time.Duration `json:"window" yaml:"window"`

	CPSC  FeedEndpoint `json:"cpsc" yaml:"cpsc"`
	FDA   FeedEndpoint `json:"fda" yaml:"fda"`
	USDA  FeedEndpoint `json:"usda" yaml:"usda"`
	NHTSA NHTSAConfig  `json:"nhtsa" yaml:"nhtsa"`
}

// FeedEndpoint points one adapter at its upstream base URL.
type FeedEndpoint struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// NHTSAConfig defines the vehicle feed endpoint and its query concurrency cap.
type NHTSAConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Upper bound on concurrent per-vehicle upstream queries.
	MaxConcurrent int `json:"maxConcurrent" yaml:"maxConcurrent"`
}

// PipelineConfig defines matching and warranty-expiry parameters.
type PipelineConfig struct {
	// Recalls updated inside this trailing window are re-evaluated for matches.
	MatchWindow time.Duration `json:"matchWindow" yaml:"matchWindow"`

	// Warranties ending within this horizon produce expiry reminders.
	ExpiryHorizonDays int `json:"expiryHorizonDays" yaml:"expiryHorizonDays"`

	// Minimum spacing between expiry reminders for one possession.
	ExpiryCooldownDays int `json:"expiryCooldownDays" yaml:"expiryCooldownDays"`
}

// PushConfig defines the outbound push gateway and dispatch bounds.
type PushConfig struct {
	// Provider type: "expo" for the Expo push API or "fcm" for Firebase.
	Provider string `json:"provider" yaml:"provider"`

	// Expo push endpoint (for expo provider).
	ExpoURL string `json:"expoUrl" yaml:"expoUrl"`

	// Firebase settings (for fcm provider).
	FirebaseProjectID       string `json:"firebaseProjectId" yaml:"firebaseProjectId"`
	FirebaseCredentialsPath string `json:"firebaseCredentialsPath" yaml:"firebaseCredentialsPath"`

	// Per-request timeout applied to gateway calls.
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Maximum pending notifications considered per dispatch run.
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Maximum messages per gateway request (Expo hard limit is 100).
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Concurrent gateway batches; 1 means sequential.
	MaxConcurrent int `json:"maxConcurrent" yaml:"maxConcurrent"`
}

// PubSubConfig defines Pub/Sub configuration for run-event publishing.
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
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
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
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
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
		return nil, errors.Wrap(err, "load env variables failed")
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
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Feeds == nil {
		cfg.Feeds = &FeedsConfig{}
	}
	if cfg.Feeds.UserAgent == "" {
		cfg.Feeds.UserAgent = "AtticRecallBot/1.0"
	}
	if cfg.Feeds.RequestTimeout <= 0 {
		cfg.Feeds.RequestTimeout = 30 * time.Second
	}
	if cfg.Feeds.Window <= 0 {
		cfg.Feeds.Window = 7 * 24 * time.Hour
	}
	if cfg.Feeds.CPSC.BaseURL == "" {
		cfg.Feeds.CPSC.BaseURL = "https://www.saferproducts.gov/RestWebServices"
	}
	if cfg.Feeds.FDA.BaseURL == "" {
		cfg.Feeds.FDA.BaseURL = "https://api.fda.gov"
	}
	if cfg.Feeds.USDA.BaseURL == "" {
		cfg.Feeds.USDA.BaseURL = "https://www.fsis.usda.gov"
	}
	if cfg.Feeds.NHTSA.BaseURL == "" {
		cfg.Feeds.NHTSA.BaseURL = "https://api.nhtsa.gov"
	}
	if cfg.Feeds.NHTSA.MaxConcurrent <= 0 {
		cfg.Feeds.NHTSA.MaxConcurrent = 4
	}

	if cfg.Pipeline == nil {
		cfg.Pipeline = &PipelineConfig{}
	}
	if cfg.Pipeline.MatchWindow <= 0 {
		cfg.Pipeline.MatchWindow = 48 * time.Hour
	}
	if cfg.Pipeline.ExpiryHorizonDays <= 0 {
		cfg.Pipeline.ExpiryHorizonDays = 30
	}
	if cfg.Pipeline.ExpiryCooldownDays <= 0 {
		cfg.Pipeline.ExpiryCooldownDays = 7
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Provider == "" {
		cfg.Push.Provider = "expo"
	}
	if cfg.Push.ExpoURL == "" {
		cfg.Push.ExpoURL = "https://exp.host/--/api/v2/push/send"
	}
	if cfg.Push.RequestTimeout <= 0 {
		cfg.Push.RequestTimeout = 30 * time.Second
	}
	if cfg.Push.PageSize <= 0 {
		cfg.Push.PageSize = 500
	}
	if cfg.Push.BatchSize <= 0 || cfg.Push.BatchSize > 100 {
		cfg.Push.BatchSize = 100
	}
	if cfg.Push.MaxConcurrent <= 0 {
		cfg.Push.MaxConcurrent = 1
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
