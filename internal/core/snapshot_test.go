package core

import "testing"

func TestSnapshotHash(t *testing.T) {
	a := Snapshot{
		GameID: "breakout",
		Tick:   10,
		Phase:  PhaseRunning,
		Score:  30,
		Entities: []Entity{
			{Kind: KindBall, Box: NewRectF(1, 2, 16, 16)},
		},
	}
	b := a
	b.Entities = append([]Entity(nil), a.Entities...)

	if a.Hash() != b.Hash() {
		t.Error("equal snapshots should hash equal")
	}

	b.Entities[0].Box.X += 0.5
	if a.Hash() == b.Hash() {
		t.Error("moved entity should change the hash")
	}

	// Best is presentation-only and is not hashed.
	c := a
	c.Best = 999
	if a.Hash() != c.Hash() {
		t.Error("Best should not affect the hash")
	}
}

func TestScoreboard(t *testing.T) {
	var s Scoreboard
	s.Reset(50)
	s.Add(30)
	s.Add(-10)

	if s.Score != 30 || s.Best != 50 {
		t.Errorf("score/best = %d/%d, expected 30/50", s.Score, s.Best)
	}
	s.Add(40)
	if s.Best != 70 {
		t.Errorf("Best = %d, expected 70", s.Best)
	}
	s.Reset(0)
	if s.Score != 0 || s.Best != 70 {
		t.Errorf("after Reset score/best = %d/%d, expected 0/70", s.Score, s.Best)
	}
}
