package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance holds gameplay tuning.
type Balance struct {
	PrestigeThreshold  float64 `yaml:"prestige_threshold"`
	AscensionThreshold int     `yaml:"ascension_threshold"`
	MaxAscensionStars  int     `yaml:"max_ascension_stars"`

	ComboWindow   time.Duration `yaml:"combo_window"`
	ComboBaseCap  int           `yaml:"combo_base_cap"`
	ComboMaxCap   int           `yaml:"combo_max_cap"`
	MomentumTick  time.Duration `yaml:"momentum_tick"`
	MaxMomentum   int           `yaml:"max_momentum"`
	MaxOffline    time.Duration `yaml:"max_offline"`
	OfflineMin    time.Duration `yaml:"offline_min"`
	RestThreshold time.Duration `yaml:"rest_threshold"`
	RestMaxWindow time.Duration `yaml:"rest_max_window"`

	AutosaveInterval time.Duration `yaml:"autosave_interval"`
	LifetimeInterval time.Duration `yaml:"lifetime_interval"`
	ChaosInterval    time.Duration `yaml:"chaos_interval"`

	EventDelayMin    time.Duration `yaml:"event_delay_min"`
	EventDelaySpread time.Duration `yaml:"event_delay_spread"`
	UltraChance      float64       `yaml:"ultra_chance"`
	GoblinChance     float64       `yaml:"goblin_chance"`
	GoblinWindow     time.Duration `yaml:"goblin_window"`
	ChainChance      float64       `yaml:"chain_chance"`
	ChainDelay       time.Duration `yaml:"chain_delay"`
}

// Default returns the stock balance.
func Default() Balance {
	return Balance{
		PrestigeThreshold:  10000,
		AscensionThreshold: 10,
		MaxAscensionStars:  5,
		ComboWindow:        800 * time.Millisecond,
		ComboBaseCap:       20,
		ComboMaxCap:        100,
		MomentumTick:       10 * time.Minute,
		MaxMomentum:        25,
		MaxOffline:         8 * time.Hour,
		OfflineMin:         30 * time.Second,
		RestThreshold:      time.Minute,
		RestMaxWindow:      30 * time.Minute,
		AutosaveInterval:   30 * time.Second,
		LifetimeInterval:   time.Minute,
		ChaosInterval:      time.Minute,
		EventDelayMin:      30 * time.Second,
		EventDelaySpread:   time.Minute,
		UltraChance:        0.005,
		GoblinChance:       0.03,
		GoblinWindow:       15 * time.Second,
		ChainChance:        0.05,
		ChainDelay:         5 * time.Second,
	}
}

// Config holds all application configuration.
type Config struct {
	Game     Balance `yaml:"game"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
		SaveFile   string `yaml:"save_file"`
	} `yaml:"database"`
	Server struct {
		Addr           string  `yaml:"addr"`
		MessagesPerSec float64 `yaml:"messages_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"server"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{Game: Default()}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SAVE_FILE"); v != "" {
		cfg.Database.SaveFile = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PRESTIGE_THRESHOLD"); v != "" {
		var threshold float64
		if _, err := fmt.Sscanf(v, "%f", &threshold); err == nil {
			cfg.Game.PrestigeThreshold = threshold
		}
	}

	// Defaults
	if cfg.Database.SaveFile == "" {
		cfg.Database.SaveFile = "data/save.json"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "127.0.0.1:8080"
	}
	if cfg.Server.MessagesPerSec == 0 {
		cfg.Server.MessagesPerSec = 50
	}
	if cfg.Server.Burst == 0 {
		cfg.Server.Burst = 100
	}

	return cfg, nil
}

// Validate checks that the balance is playable.
func (c *Config) Validate() error {
	g := c.Game
	if g.PrestigeThreshold <= 0 {
		return fmt.Errorf("game.prestige_threshold must be positive")
	}
	if g.AscensionThreshold <= 0 {
		return fmt.Errorf("game.ascension_threshold must be positive")
	}
	if g.ComboWindow <= 0 || g.MomentumTick <= 0 {
		return fmt.Errorf("game.combo_window and game.momentum_tick must be positive")
	}
	if g.AutosaveInterval <= 0 || g.LifetimeInterval <= 0 || g.ChaosInterval <= 0 {
		return fmt.Errorf("game timer intervals must be positive")
	}
	if g.EventDelayMin <= 0 || g.EventDelaySpread < 0 {
		return fmt.Errorf("game.event_delay_min must be positive")
	}
	if g.ChainDelay < 0 || g.EventDelayMin <= g.ChainDelay {
		return fmt.Errorf("game.event_delay_min must exceed game.chain_delay")
	}
	for name, p := range map[string]float64{
		"ultra_chance":  g.UltraChance,
		"goblin_chance": g.GoblinChance,
		"chain_chance":  g.ChainChance,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("game.%s must be within [0, 1]", name)
		}
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}
