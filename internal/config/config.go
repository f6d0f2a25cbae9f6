package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

type GameConfig struct {
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	MaxPlayAttempts     int `json:"max_play_attempts"`
	// BotAutoFillDelaySeconds configures how many seconds to wait before adding a bot to a short-handed lobby.
	BotAutoFillDelaySeconds int    `json:"bot_auto_fill_delay_seconds"`
	BotsEnabled             bool   `json:"bots_enabled"`
	BotDifficulty           string `json:"bot_difficulty"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTurnDuration returns the per-turn timeout, or a safe default when the
// config is missing or unset.
func GetTurnDuration() time.Duration {
	if cfg == nil || cfg.TurnDurationSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(cfg.TurnDurationSeconds) * time.Second
}

// GetMaxPlayAttempts returns the retry budget for a single turn.
func GetMaxPlayAttempts() int {
	if cfg == nil || cfg.MaxPlayAttempts <= 0 {
		return 3
	}
	return cfg.MaxPlayAttempts
}

// GetBotAutoFillDelay returns how long a lobby waits before seating bots.
func GetBotAutoFillDelay() time.Duration {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.BotAutoFillDelaySeconds) * time.Second
}

// BotsEnabled reports whether short-handed lobbies may be filled with bots.
func BotsEnabled() bool {
	if cfg == nil {
		return true
	}
	return cfg.BotsEnabled
}

// GetBotDifficulty returns the configured bot difficulty label.
func GetBotDifficulty() string {
	if cfg == nil || cfg.BotDifficulty == "" {
		return "easy"
	}
	return cfg.BotDifficulty
}
