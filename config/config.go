package config

import (
	"fmt"
	"strings"
	"time"

	"duel-service/internal/api/game"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Postgres     PostgresConfig     `mapstructure:"postgres"`
	SessionRedis SessionRedisConfig `mapstructure:"sessionredis"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	Game         GameConfig         `mapstructure:"game"`
	Payout       PayoutConfig       `mapstructure:"payout"`
	Ledger       LedgerConfig       `mapstructure:"ledger"`
	Puzzles      PuzzlesConfig      `mapstructure:"puzzles"`
	RateLimit    RateLimitConfig    `mapstructure:"ratelimit"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Host        string `mapstructure:"host"`
	Description string `mapstructure:"description"`
	AdminToken  string `mapstructure:"admin_token"`
}

type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.DB)
}

type SessionRedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Enabled       bool     `mapstructure:"enabled"`
	Brokers       []string `mapstructure:"brokers"`
	ResultsTopic  string   `mapstructure:"results_topic"`
	AccountsTopic string   `mapstructure:"accounts_topic"`
	GroupID       string   `mapstructure:"group_id"`
}

type GameConfig struct {
	MinEntryFee    int64         `mapstructure:"min_entry_fee"`
	MaxEntryFee    int64         `mapstructure:"max_entry_fee"`
	MaxPlayers     int           `mapstructure:"max_players"`
	TotalRounds    int           `mapstructure:"total_rounds"`
	RoundDuration  time.Duration `mapstructure:"round_duration"`
	SettleDelay    time.Duration `mapstructure:"settle_delay"`
	CleanupGrace   time.Duration `mapstructure:"cleanup_grace"`
	HouseEdge      string        `mapstructure:"house_edge"`
	HostOnlyStart  bool          `mapstructure:"host_only_start"`
	AllowSoloStart bool          `mapstructure:"allow_solo_start"`
}

type PayoutConfig struct {
	MaxAttempts  int           `mapstructure:"max_attempts"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

type LedgerConfig struct {
	Driver          string `mapstructure:"driver"`
	StartingBalance int64  `mapstructure:"starting_balance"`
}

type PuzzlesConfig struct {
	File string `mapstructure:"file"`
	Seed uint64 `mapstructure:"seed"`
}

type RateLimitConfig struct {
	AnswersPerSecond  float64 `mapstructure:"answers_per_second"`
	AnswerBurst       int     `mapstructure:"answer_burst"`
	RequestsPerMinute int     `mapstructure:"requests_per_minute"`
	Burst             int     `mapstructure:"burst"`
}

// GameSettings converts the game and payout sections into engine settings.
func (c Config) GameSettings() (game.Settings, error) {
	edge, err := decimal.NewFromString(c.Game.HouseEdge)
	if err != nil {
		return game.Settings{}, fmt.Errorf("game.house_edge %q: %w", c.Game.HouseEdge, err)
	}
	s := game.Settings{
		MinEntryFee:    c.Game.MinEntryFee,
		MaxEntryFee:    c.Game.MaxEntryFee,
		MaxPlayers:     c.Game.MaxPlayers,
		TotalRounds:    c.Game.TotalRounds,
		RoundDuration:  c.Game.RoundDuration,
		SettleDelay:    c.Game.SettleDelay,
		CleanupGrace:   c.Game.CleanupGrace,
		HouseEdge:      edge,
		HostOnlyStart:  c.Game.HostOnlyStart,
		AllowSoloStart: c.Game.AllowSoloStart,
		PayoutAttempts: c.Payout.MaxAttempts,
		PayoutBackoff:  c.Payout.RetryBackoff,
	}
	return s, s.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "duel-service")
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.admin_token", "")

	v.SetDefault("postgres.enabled", false)
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "myuser")
	v.SetDefault("postgres.password", "mypassword")
	v.SetDefault("postgres.db", "dueldb")

	v.SetDefault("sessionredis.enabled", false)
	v.SetDefault("sessionredis.host", "localhost")
	v.SetDefault("sessionredis.port", "6379")
	v.SetDefault("sessionredis.db", 0)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.results_topic", "game-results")
	v.SetDefault("kafka.accounts_topic", "account-events")
	v.SetDefault("kafka.group_id", "duel-service")

	v.SetDefault("game.min_entry_fee", 500)
	v.SetDefault("game.max_entry_fee", 20000)
	v.SetDefault("game.max_players", 6)
	v.SetDefault("game.total_rounds", 5)
	v.SetDefault("game.round_duration", "30s")
	v.SetDefault("game.settle_delay", "3s")
	v.SetDefault("game.cleanup_grace", "10s")
	v.SetDefault("game.house_edge", "0.06")
	v.SetDefault("game.host_only_start", true)
	v.SetDefault("game.allow_solo_start", false)

	v.SetDefault("payout.max_attempts", 3)
	v.SetDefault("payout.retry_backoff", "200ms")

	v.SetDefault("ledger.driver", "memory")
	v.SetDefault("ledger.starting_balance", 100000)

	v.SetDefault("puzzles.seed", 0)

	v.SetDefault("ratelimit.answers_per_second", 2)
	v.SetDefault("ratelimit.answer_burst", 4)
	v.SetDefault("ratelimit.requests_per_minute", 120)
	v.SetDefault("ratelimit.burst", 20)
}

func Read() Config {
	cfg, err := load(viper.New(), true)
	if err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}
	return cfg
}

func load(v *viper.Viper, readFile bool) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app")
	v.AddConfigPath("/")

	setDefaults(v)

	// ENV overrides with prefix DUEL_ and dot-to-underscore replacement
	v.SetEnvPrefix("DUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if readFile {
		if err := v.ReadInConfig(); err != nil {
			zap.L().Warn("Failed to read configuration file", zap.Error(err))
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return config, err
	}
	return config, nil
}
