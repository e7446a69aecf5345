// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// SnakeConfig contains all configuration for both Snake variants.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeGameplay defines movement, growth and scoring.
type SnakeGameplay struct {
	MoveIntervalMs int `yaml:"move_interval_ms"`
	MinIntervalMs  int `yaml:"min_interval_ms"`
	SpeedUpEvery   int `yaml:"speed_up_every"` // apples per level
	SpeedUpMs      int `yaml:"speed_up_ms"`
	Growth         int `yaml:"growth"`
	ApplePoints    int `yaml:"apple_points"`
	StartLength    int `yaml:"start_length"`
}

// BreakoutConfig contains all configuration for Breakout.
// Distances are in field pixels, speeds in pixels per tick.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Ball       BreakoutBall     `yaml:"ball"`
	Bricks     BreakoutBricks   `yaml:"bricks"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the size of a continuous playfield.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines paddle geometry and speed.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Speed        float64 `yaml:"speed"`
}

// BreakoutBall defines ball size and speed.
type BreakoutBall struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	MaxLaunchDeg  float64 `yaml:"max_launch_deg"`
}

// BreakoutBricks defines the brick wall layout.
type BreakoutBricks struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
}

// BreakoutGameplay defines lives and scoring.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"` // multiplied by level
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the well size.
type TetrisBoard struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TetrisGravity defines the drop interval schedule:
// max(min_ms, base_ms - (level-1) * step_ms).
type TetrisGravity struct {
	BaseMs int `yaml:"base_ms"`
	StepMs int `yaml:"step_ms"`
	MinMs  int `yaml:"min_ms"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints    int `yaml:"line_points"` // per line, multiplied by level
	SoftDrop      int `yaml:"soft_drop"`   // per row
	HardDrop      int `yaml:"hard_drop"`   // per row
	LinesPerLevel int `yaml:"lines_per_level"`
}

// T2048Config contains all configuration for 2048.
type T2048Config struct {
	Board T2048Board `yaml:"board"`
	Spawn T2048Spawn `yaml:"spawn"`
}

// T2048Board defines board size and the winning tile.
type T2048Board struct {
	Size    int `yaml:"size"`
	WinTile int `yaml:"win_tile"`
}

// T2048Spawn defines new tile generation.
type T2048Spawn struct {
	StartTiles int     `yaml:"start_tiles"`
	FourChance float64 `yaml:"four_chance"`
}

// InvadersConfig contains all configuration for Space Invaders.
// Distances are in field pixels, speeds in pixels per tick.
type InvadersConfig struct {
	Field        FieldConfig       `yaml:"field"`
	Player       InvadersPlayer    `yaml:"player"`
	Formation    InvadersFormation `yaml:"formation"`
	Enemies      []EnemyType       `yaml:"enemies"`
	EnemyFire    InvadersEnemyFire `yaml:"enemy_fire"`
	PlayerBullet BulletConfig      `yaml:"player_bullet"`
	Weapons      []WeaponConfig    `yaml:"weapons"`
	Boss         InvadersBoss      `yaml:"boss"`
	Difficulty   DifficultyConfig  `yaml:"difficulty"`
}

// InvadersPlayer defines the player ship.
type InvadersPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
	Lives  int     `yaml:"lives"`
}

// InvadersFormation defines how a wave is laid out.
// Rows per wave: min(base_rows + wave/2, max_rows).
type InvadersFormation struct {
	Cols     int     `yaml:"cols"`
	BaseRows int     `yaml:"base_rows"`
	MaxRows  int     `yaml:"max_rows"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	StepX    float64 `yaml:"step_x"`
	StepY    float64 `yaml:"step_y"`
	Size     float64 `yaml:"size"`
	Drop     float64 `yaml:"drop"`
}

// EnemyType defines one kind of invader.
type EnemyType struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"`
	HP    int     `yaml:"hp"`
	Score int     `yaml:"score"`
}

// InvadersEnemyFire defines enemy shooting.
// Chance per enemy per tick: base_chance + wave * chance_per_wave.
type InvadersEnemyFire struct {
	BaseChance    float64 `yaml:"base_chance"`
	ChancePerWave float64 `yaml:"chance_per_wave"`
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`
	SpeedPerWave  float64 `yaml:"speed_per_wave"`
}

// BulletConfig defines a projectile.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// WeaponConfig defines one player weapon.
type WeaponConfig struct {
	Name       string  `yaml:"name"`
	Unlock     int     `yaml:"unlock"` // score at which the weapon becomes available
	Damage     float64 `yaml:"damage"`
	CooldownMs int     `yaml:"cooldown_ms"`
	Shots      int     `yaml:"shots"`
	BeamTicks  int     `yaml:"beam_ticks,omitempty"` // > 0 makes the weapon a column beam
}

// InvadersBoss defines the boss wave.
type InvadersBoss struct {
	Every     int       `yaml:"every"`
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Speed     float64   `yaml:"speed"`
	BaseHP    int       `yaml:"base_hp"`
	HPPerWave int       `yaml:"hp_per_wave"`
	AlertMs   int       `yaml:"alert_ms"`
	Reward    int       `yaml:"reward"`
	AttackMs  []int     `yaml:"attack_ms"` // per phase
	PhaseAt   []float64 `yaml:"phase_at"`  // hp fractions entering phase 2, 3
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.4
	default:
		return 0.0
	}
}

// applyDifficulty sets the shared difficulty block for a preset.
// Normal keeps whatever the YAML says.
func applyDifficulty(d *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed, DifficultyEasy:
		d.Enabled = false
		d.InitialLevel = 0
	case DifficultyHard:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
