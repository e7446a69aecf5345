package core

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// EntityKind tags what a snapshot entity represents.
type EntityKind string

const (
	KindSnake   EntityKind = "snake"
	KindHead    EntityKind = "head"
	KindApple   EntityKind = "apple"
	KindPaddle  EntityKind = "paddle"
	KindBall    EntityKind = "ball"
	KindBrick   EntityKind = "brick"
	KindPiece   EntityKind = "piece"
	KindGhost   EntityKind = "ghost"
	KindNext    EntityKind = "next"
	KindPlayer  EntityKind = "player"
	KindEnemy   EntityKind = "enemy"
	KindBoss    EntityKind = "boss"
	KindBullet  EntityKind = "bullet"
	KindBomb    EntityKind = "bomb"
	KindLaser   EntityKind = "laser"
	KindBanner  EntityKind = "banner"
	KindUnknown EntityKind = "unknown"
)

// Entity is one drawable object in a snapshot.
type Entity struct {
	Kind  EntityKind `yaml:"kind"`
	Box   RectF      `yaml:"box,flow"`
	Color Color      `yaml:"color,omitempty"`
	HP    int        `yaml:"hp,omitempty"`
	Label string     `yaml:"label,omitempty"`
}

// Snapshot is the read-only view of a game handed to presentation.
// It is a value copy; mutating it never affects the game.
type Snapshot struct {
	GameID   string   `yaml:"game"`
	Tick     uint64   `yaml:"tick"`
	Phase    Phase    `yaml:"phase"`
	Score    int      `yaml:"score"`
	Best     int      `yaml:"best"`
	Lives    int      `yaml:"lives,omitempty"`
	Level    int      `yaml:"level"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Entities []Entity `yaml:"entities,omitempty"`
	Grid     [][]int  `yaml:"grid,omitempty,flow"`
	Message  string   `yaml:"message,omitempty"`
}

// State returns the GameState portion of the snapshot.
func (s Snapshot) State() GameState {
	return GameState{
		Score: s.Score,
		Best:  s.Best,
		Lives: s.Lives,
		Level: s.Level,
		Phase: s.Phase,
	}
}

// Count returns the number of entities of the given kind.
func (s Snapshot) Count(kind EntityKind) int {
	n := 0
	for _, e := range s.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Hash returns an FNV-1a digest of the simulation-relevant fields.
// Two runs with the same seed and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}

	h.Write([]byte(s.GameID))
	putInt(int64(s.Tick))
	putInt(int64(s.Phase))
	putInt(int64(s.Score))
	putInt(int64(s.Lives))
	putInt(int64(s.Level))
	for _, e := range s.Entities {
		h.Write([]byte(e.Kind))
		putFloat(e.Box.X)
		putFloat(e.Box.Y)
		putFloat(e.Box.W)
		putFloat(e.Box.H)
		putInt(int64(e.HP))
	}
	for _, row := range s.Grid {
		for _, v := range row {
			putInt(int64(v))
		}
	}
	return h.Sum64()
}
