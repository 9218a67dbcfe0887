package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"crossing": map[string]any{
			"passInterval":  "10m",
			"matchRadiusKm": 1,
		},
		"redis": map[string]any{
			"keyPrefix": "crossing",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CROSSING_PASSINTERVAL", want: "crossing.passInterval"},
		{envKey: "CROSSING_MATCHRADIUSKM", want: "crossing.matchRadiusKm"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultRedisKeyPrefix, cfg.Redis.KeyPrefix)
	assert.Equal(t, defaultSQLSlowThreshold, cfg.SQLLog.SlowThreshold)
	assert.False(t, cfg.SQLLog.LogRecordNotFound)
	assert.Equal(t, 10*time.Minute, cfg.Crossing.PassInterval)
	assert.Equal(t, 11*time.Minute, cfg.Crossing.SpotGap)
	assert.Equal(t, 15, cfg.Crossing.PageSize)
	assert.InDelta(t, 30.0, cfg.Blur.HomeRadiusKm, 0)
	assert.Equal(t, 25*time.Hour, cfg.Blur.PurchaseWindow)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Crossing: &CrossingConfig{
			PassInterval:  time.Minute,
			MatchRadiusKm: 0.5,
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Crossing.PassInterval)
	assert.InDelta(t, 0.5, cfg.Crossing.MatchRadiusKm, 0)
	assert.InDelta(t, 10.0, cfg.Crossing.GroupRadiusKm, 0)
	assert.Equal(t, 8, cfg.Crossing.PassWorkers)
}

func TestCrossingConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (*CrossingConfig)(nil).Location())
	assert.Equal(t, time.UTC, (&CrossingConfig{TimeZone: "Nowhere/Invalid"}).Location())
	assert.Equal(t, "Asia/Taipei", (&CrossingConfig{TimeZone: "Asia/Taipei"}).Location().String())
}
