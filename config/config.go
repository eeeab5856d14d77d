package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/twentynine/consts"
	"github.com/ratel-online/twentynine/rule"
	"github.com/ratel-online/twentynine/table"
)

// EnvPath names the variable holding the config file path.
const EnvPath = "TWENTYNINE_CONFIG"

type Config struct {
	TcpAddr               string `json:"tcp_addr"`
	WsAddr                string `json:"ws_addr"`
	TurnTimeoutSeconds    int    `json:"turn_timeout_seconds"`
	TrickDelayMillis      int    `json:"trick_delay_millis"`
	NextRoundDelaySeconds int    `json:"next_round_delay_seconds"`
	MaxBid                int    `json:"max_bid"`
	MarriageBonus         int    `json:"marriage_bonus"`
	// Seed fixes the shuffle; zero seeds from the clock.
	Seed int64 `json:"seed"`
}

func Default() Config {
	return Config{
		TcpAddr:               ":9999",
		WsAddr:                ":9998",
		TurnTimeoutSeconds:    int(consts.TurnTimeout / time.Second),
		TrickDelayMillis:      int(consts.TrickDelay / time.Millisecond),
		NextRoundDelaySeconds: int(consts.NextRoundDelay / time.Second),
		MaxBid:                rule.Classic.MaxBid,
		MarriageBonus:         rule.Classic.MarriageBonus,
	}
}

// Load reads path over the defaults. An empty path falls back to the
// environment, and to the defaults when that is unset too.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.TurnTimeoutSeconds <= 0 || c.TrickDelayMillis <= 0 || c.NextRoundDelaySeconds <= 0 {
		return fmt.Errorf("config: delays must be positive")
	}
	if c.MaxBid < rule.Classic.MinBid() {
		return fmt.Errorf("config: max_bid %d below the minimum bid %d", c.MaxBid, rule.Classic.MinBid())
	}
	if c.MarriageBonus < 0 {
		return fmt.Errorf("config: negative marriage_bonus")
	}
	return nil
}

func (c Config) Rules() rule.Rules {
	rules := rule.Classic
	rules.MaxBid = c.MaxBid
	rules.MarriageBonus = c.MarriageBonus
	return rules
}

func (c Config) TableOptions() table.Options {
	return table.Options{
		Rules:          c.Rules(),
		TurnTimeout:    time.Duration(c.TurnTimeoutSeconds) * time.Second,
		TrickDelay:     time.Duration(c.TrickDelayMillis) * time.Millisecond,
		NextRoundDelay: time.Duration(c.NextRoundDelaySeconds) * time.Second,
		Seed:           c.Seed,
	}
}
