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
	defaultRedisKeyPrefix     = "crossing"
	defaultSQLSlowThreshold   = 200 * time.Millisecond
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

	Migration *MigrationConfig `json:"migration" yaml:"migration"`

	SQLLog *SQLLogConfig `json:"sqlLog" yaml:"sqlLog"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Crossing tunes ingestion, the batch matching pass and ranking.
	Crossing *CrossingConfig `json:"crossing" yaml:"crossing"`

	Blur *BlurConfig `json:"blur" yaml:"blur"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MigrationConfig controls schema migration at startup
type MigrationConfig struct {
	Auto bool `json:"auto" yaml:"auto"`
}

// SQLLogConfig controls how GORM statements reach the logger
type SQLLogConfig struct {
	// Statements slower than this are logged at Warn; zero disables the check
	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"`

	// Log gorm.ErrRecordNotFound as a failed query
	LogRecordNotFound bool `json:"logRecordNotFound" yaml:"logRecordNotFound"`
}

// RedisConfig defines the connection to the ephemeral geo cache
type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	PoolSize  int    `json:"poolSize" yaml:"poolSize"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// CrossingConfig defines the proximity matching engine parameters
type CrossingConfig struct {
	// Interval between two batch matching passes
	PassInterval time.Duration `json:"passInterval" yaml:"passInterval"`

	// Maximum number of groups processed concurrently in one pass
	PassWorkers int `json:"passWorkers" yaml:"passWorkers"`

	// Radius used to attach a point to an existing group marker
	GroupRadiusKm float64 `json:"groupRadiusKm" yaml:"groupRadiusKm"`

	// Radius under which two members of a group are considered crossing
	MatchRadiusKm float64 `json:"matchRadiusKm" yaml:"matchRadiusKm"`

	// Points closer than this to the previous one reuse its coordinates
	NoiseMeters float64 `json:"noiseMeters" yaml:"noiseMeters"`

	GeoPointTTL    time.Duration `json:"geoPointTTL" yaml:"geoPointTTL"`
	MatchRecordTTL time.Duration `json:"matchRecordTTL" yaml:"matchRecordTTL"`

	// Look-back window for ranking computation
	RankingWindow time.Duration `json:"rankingWindow" yaml:"rankingWindow"`

	// Gap after which two consecutive crossings count as separate spots
	SpotGap time.Duration `json:"spotGap" yaml:"spotGap"`

	PageSize   int `json:"pageSize" yaml:"pageSize"`
	HiddenDays int `json:"hiddenDays" yaml:"hiddenDays"`

	// IANA zone used for quiet windows and calendar day buckets
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// BlurConfig defines when crossing detail is withheld
type BlurConfig struct {
	HomeRadiusKm   float64       `json:"homeRadiusKm" yaml:"homeRadiusKm"`
	PurchaseWindow time.Duration `json:"purchaseWindow" yaml:"purchaseWindow"`
}

// Location resolves the configured time zone, falling back to UTC.
func (c *CrossingConfig) Location() *time.Location {
	if c == nil || c.TimeZone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// DefaultCrossingConfig returns the engine defaults.
func DefaultCrossingConfig() *CrossingConfig {
	return &CrossingConfig{
		PassInterval:   10 * time.Minute,
		PassWorkers:    8,
		GroupRadiusKm:  10,
		MatchRadiusKm:  1,
		NoiseMeters:    150,
		GeoPointTTL:    25 * time.Hour,
		MatchRecordTTL: 8 * 24 * time.Hour,
		RankingWindow:  24 * time.Hour,
		SpotGap:        11 * time.Minute,
		PageSize:       15,
		HiddenDays:     7,
		TimeZone:       "UTC",
	}
}

// DefaultBlurConfig returns the blur defaults.
func DefaultBlurConfig() *BlurConfig {
	return &BlurConfig{
		HomeRadiusKm:   30,
		PurchaseWindow: 25 * time.Hour,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides, e.g. CROSSING_PASSINTERVAL -> crossing.passInterval
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every unset engine parameter.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.SQLLog == nil {
		cfg.SQLLog = &SQLLogConfig{SlowThreshold: defaultSQLSlowThreshold}
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = defaultRedisKeyPrefix
	}

	defaults := DefaultCrossingConfig()
	if cfg.Crossing == nil {
		cfg.Crossing = defaults
	} else {
		c := cfg.Crossing
		c.PassInterval = orDuration(c.PassInterval, defaults.PassInterval)
		c.PassWorkers = orInt(c.PassWorkers, defaults.PassWorkers)
		c.GroupRadiusKm = orFloat(c.GroupRadiusKm, defaults.GroupRadiusKm)
		c.MatchRadiusKm = orFloat(c.MatchRadiusKm, defaults.MatchRadiusKm)
		c.NoiseMeters = orFloat(c.NoiseMeters, defaults.NoiseMeters)
		c.GeoPointTTL = orDuration(c.GeoPointTTL, defaults.GeoPointTTL)
		c.MatchRecordTTL = orDuration(c.MatchRecordTTL, defaults.MatchRecordTTL)
		c.RankingWindow = orDuration(c.RankingWindow, defaults.RankingWindow)
		c.SpotGap = orDuration(c.SpotGap, defaults.SpotGap)
		c.PageSize = orInt(c.PageSize, defaults.PageSize)
		c.HiddenDays = orInt(c.HiddenDays, defaults.HiddenDays)
		if c.TimeZone == "" {
			c.TimeZone = defaults.TimeZone
		}
	}

	blurDefaults := DefaultBlurConfig()
	if cfg.Blur == nil {
		cfg.Blur = blurDefaults
	} else {
		cfg.Blur.HomeRadiusKm = orFloat(cfg.Blur.HomeRadiusKm, blurDefaults.HomeRadiusKm)
		cfg.Blur.PurchaseWindow = orDuration(cfg.Blur.PurchaseWindow, blurDefaults.PurchaseWindow)
	}
}

func orDuration(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}

	return v
}

func orInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}

	return v
}

func orFloat(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}

	return v
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
