package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", gameID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// DefaultSnakeConfig returns the classic Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{Width: 20, Height: 20},
		Gameplay: SnakeGameplay{
			MoveIntervalMs: 100,
			MinIntervalMs:  50,
			SpeedUpEvery:   5,
			SpeedUpMs:      5,
			Growth:         1,
			ApplePoints:    10,
			StartLength:    3,
		},
		Difficulty: defaultDifficulty(500),
	}
}

// DefaultSnakePlusConfig returns the Snake plus variant configuration.
func DefaultSnakePlusConfig() SnakeConfig {
	cfg := DefaultSnakeConfig()
	cfg.Grid = SnakeGrid{Width: 24, Height: 24}
	cfg.Gameplay.MoveIntervalMs = 90
	cfg.Gameplay.Growth = 2
	return cfg
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Paddle: BreakoutPaddle{
			Width:        120,
			Height:       20,
			BottomOffset: 50,
			Speed:        8,
		},
		Ball: BreakoutBall{
			Radius:        8,
			Speed:         4,
			SpeedPerLevel: 0.5,
			MaxLaunchDeg:  30,
		},
		Bricks: BreakoutBricks{
			Rows:       5,
			Cols:       10,
			Width:      75,
			Height:     25,
			Padding:    5,
			OffsetTop:  60,
			OffsetLeft: 17.5,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 10,
		},
		Difficulty: defaultDifficulty(2000),
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	cfg := TetrisConfig{
		Board:   TetrisBoard{Cols: 10, Rows: 20},
		Gravity: TetrisGravity{BaseMs: 1000, StepMs: 100, MinMs: 100},
		Scoring: TetrisScoring{
			LinePoints:    100,
			SoftDrop:      1,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
		Difficulty: defaultDifficulty(10000),
	}
	cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	return cfg
}

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: T2048Board{Size: 4, WinTile: 2048},
		Spawn: T2048Spawn{StartTiles: 2, FourChance: 0.1},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: InvadersPlayer{
			Width:  50,
			Height: 50,
			Y:      500,
			Speed:  6,
			Lives:  3,
		},
		Formation: InvadersFormation{
			Cols:     8,
			BaseRows: 3,
			MaxRows:  5,
			OriginX:  50,
			OriginY:  50,
			StepX:    90,
			StepY:    60,
			Size:     40,
			Drop:     8,
		},
		Enemies: []EnemyType{
			{Name: "normal", Speed: 1, HP: 2, Score: 10},
			{Name: "fast", Speed: 1.5, HP: 1, Score: 20},
			{Name: "tank", Speed: 0.5, HP: 3, Score: 30},
		},
		EnemyFire: InvadersEnemyFire{
			BaseChance:    0.0005,
			ChancePerWave: 0.0002,
			Size:          8,
			Speed:         3,
			SpeedPerWave:  0.2,
		},
		PlayerBullet: BulletConfig{Width: 6, Height: 15, Speed: 10},
		Weapons: []WeaponConfig{
			{Name: "basic", Unlock: 0, Damage: 1, CooldownMs: 300, Shots: 1},
			{Name: "double", Unlock: 500, Damage: 1, CooldownMs: 250, Shots: 2},
			{Name: "laser", Unlock: 1000, Damage: 3, CooldownMs: 600, Shots: 1, BeamTicks: 30},
			{Name: "spread", Unlock: 1500, Damage: 1, CooldownMs: 400, Shots: 5},
		},
		Boss: InvadersBoss{
			Every:     5,
			Width:     120,
			Height:    80,
			X:         340,
			Y:         50,
			Speed:     2,
			BaseHP:    50,
			HPPerWave: 10,
			AlertMs:   3000,
			Reward:    1000,
			AttackMs:  []int{1000, 700, 500},
			PhaseAt:   []float64{0.66, 0.33},
		},
		Difficulty: defaultDifficulty(5000),
	}
}

// defaultDifficulty is the shared progression block: disabled, so the
// stock rules apply unless a preset turns it on.
func defaultDifficulty(maxAt int) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: maxAt,
		},
		Scaling: ScalingConfig{SpeedMultiplier: 0.5},
	}
}
