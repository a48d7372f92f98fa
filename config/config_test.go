package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), false)
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "memory", cfg.Ledger.Driver)
	require.Equal(t, 30*time.Second, cfg.Game.RoundDuration)
	require.Equal(t, 5, cfg.Game.TotalRounds)
	require.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	require.False(t, cfg.Postgres.Enabled)

	s, err := cfg.GameSettings()
	require.NoError(t, err)
	require.True(t, s.HouseEdge.Equal(decimal.RequireFromString("0.06")))
	require.Equal(t, int64(500), s.MinEntryFee)
	require.Equal(t, 6, s.MaxPlayers)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DUEL_GAME_ROUND_DURATION", "45s")
	t.Setenv("DUEL_SERVER_PORT", "9090")
	t.Setenv("DUEL_GAME_ALLOW_SOLO_START", "true")

	cfg, err := load(viper.New(), false)
	require.NoError(t, err)

	require.Equal(t, 45*time.Second, cfg.Game.RoundDuration)
	require.Equal(t, "9090", cfg.Server.Port)
	require.True(t, cfg.Game.AllowSoloStart)
}

func TestLoad_AdminTokenDisabledUntilSet(t *testing.T) {
	// Given the shipped config file
	cfg, err := load(viper.New(), true)
	require.NoError(t, err)

	// Then admin routes stay locked without an explicit token
	require.Empty(t, cfg.Server.AdminToken)

	// When the operator provides one through the environment
	t.Setenv("DUEL_SERVER_ADMIN_TOKEN", "s3cret")
	cfg, err = load(viper.New(), true)
	require.NoError(t, err)

	// Then it is picked up
	require.Equal(t, "s3cret", cfg.Server.AdminToken)
}

func TestGameSettings_Rejects(t *testing.T) {
	cfg, err := load(viper.New(), false)
	require.NoError(t, err)

	bad := cfg
	bad.Game.HouseEdge = "six percent"
	_, err = bad.GameSettings()
	require.Error(t, err)

	bad = cfg
	bad.Game.MinEntryFee = 30000
	_, err = bad.GameSettings()
	require.Error(t, err)

	bad = cfg
	bad.Game.TotalRounds = 0
	_, err = bad.GameSettings()
	require.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: "5433", User: "u", Password: "p", DB: "duel"}

	require.Equal(t, "host=db port=5433 user=u password=p dbname=duel sslmode=disable", p.DSN())
}
