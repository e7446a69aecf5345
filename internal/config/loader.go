package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration for gameID into a copy of fallback.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> fallback as given.
// Only an explicit customPath can produce an error; the other sources are
// skipped when missing or malformed. Keys absent from the YAML keep the
// fallback's values.
func Load[T any](gameID, customPath string, fallback T) (T, error) {
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if data := GetDefaultYAML(gameID); data != nil {
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads the configuration for a Snake variant ("snake" or "snake_plus").
func LoadSnake(gameID, customPath string, preset DifficultyPreset) (SnakeConfig, error) {
	fallback := DefaultSnakeConfig()
	if gameID == "snake_plus" {
		fallback = DefaultSnakePlusConfig()
	}
	cfg, err := Load(gameID, customPath, fallback)
	ApplySnakePreset(&cfg, preset)
	return cfg, err
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string, preset DifficultyPreset) (BreakoutConfig, error) {
	cfg, err := Load("breakout", customPath, DefaultBreakoutConfig())
	ApplyBreakoutPreset(&cfg, preset)
	return cfg, err
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string, preset DifficultyPreset) (TetrisConfig, error) {
	cfg, err := Load("tetris", customPath, DefaultTetrisConfig())
	ApplyTetrisPreset(&cfg, preset)
	return cfg, err
}

// LoadT2048 loads 2048 configuration. 2048 has no timing, so presets do not apply.
func LoadT2048(customPath string) (T2048Config, error) {
	return Load("2048", customPath, DefaultT2048Config())
}

// LoadInvaders loads Space Invaders configuration.
func LoadInvaders(customPath string, preset DifficultyPreset) (InvadersConfig, error) {
	cfg, err := Load("invaders", customPath, DefaultInvadersConfig())
	ApplyInvadersPreset(&cfg, preset)
	return cfg, err
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MoveIntervalMs += 30
	case DifficultyHard:
		cfg.Gameplay.MoveIntervalMs = max(cfg.Gameplay.MinIntervalMs, cfg.Gameplay.MoveIntervalMs-20)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 5
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)
	if preset == DifficultyEasy {
		cfg.Gravity.BaseMs += 200
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.EnemyFire.BaseChance /= 2
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
