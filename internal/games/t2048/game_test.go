package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWith(testRuntime, config.DefaultT2048Config())
	return g
}

// gridOf builds a grid from literal rows.
func gridOf(rows [][]int) *core.Grid {
	g := core.NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(g.Cells[y], row)
	}
	return g
}

// withBoard returns a running game with the given tiles.
func withBoard(t *testing.T, rows [][]int) *Game {
	t.Helper()
	g := newTestGame(t)
	g.grid = gridOf(rows)
	g.machine.Start()
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("2048") {
		t.Error("2048 not registered")
	}
}

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
		moved    bool
	}{
		{"simple merge", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4, true},
		{"merge with trailing tile", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4, true},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8, true},
		{"merged tile does not merge again", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, 4, true},
		{"chain stays split", []int{4, 4, 8, 0}, []int{8, 8, 0, 0}, 8, true},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0, false},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4, true},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4, true},
		{"no change needed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, 0, false},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0, false},
		{"single tile", []int{0, 4, 0, 0}, []int{4, 0, 0, 0}, 0, true},
		{"five wide", []int{2, 2, 2, 2, 2}, []int{4, 4, 2, 0, 0}, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, score, moved := MergeLine(tt.input)
			if !reflect.DeepEqual(out, tt.expected) {
				t.Errorf("MergeLine(%v) = %v, expected %v", tt.input, out, tt.expected)
			}
			if score != tt.score {
				t.Errorf("MergeLine(%v) score = %d, expected %d", tt.input, score, tt.score)
			}
			if moved != tt.moved {
				t.Errorf("MergeLine(%v) moved = %v, expected %v", tt.input, moved, tt.moved)
			}
		})
	}
}

func TestSlide(t *testing.T) {
	start := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}
	tests := []struct {
		dir      Direction
		expected [][]int
		score    int
	}{
		{DirLeft, [][]int{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 4, 0, 0},
			{2, 0, 0, 0},
		}, 20},
		{DirRight, [][]int{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 4, 4},
			{0, 0, 0, 2},
		}, 20},
		{DirUp, [][]int{
			{2, 4, 4, 4},
			{4, 0, 2, 0},
			{2, 0, 0, 0},
			{0, 0, 0, 0},
		}, 8},
		{DirDown, [][]int{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{4, 0, 4, 0},
			{2, 4, 2, 4},
		}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := gridOf(start)
			score, moved, _ := Slide(g, tt.dir)
			if !reflect.DeepEqual(g.Cells, tt.expected) {
				t.Errorf("Slide(%v) = %v, expected %v", tt.dir, g.Cells, tt.expected)
			}
			if score != tt.score {
				t.Errorf("Slide(%v) score = %d, expected %d", tt.dir, score, tt.score)
			}
			if !moved {
				t.Errorf("Slide(%v) should report a change", tt.dir)
			}
		})
	}
}

func TestSlideReportsMerges(t *testing.T) {
	g := gridOf([][]int{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	_, _, merges := Slide(g, DirRight)
	if len(merges) != 1 || merges[0] != (core.Point{X: 3, Y: 0}) {
		t.Errorf("merges = %v, expected [(3,0)]", merges)
	}
}

func TestStartLayout(t *testing.T) {
	g := newTestGame(t)
	tiles := 0
	for _, row := range g.Board() {
		for _, v := range row {
			if v != 0 {
				tiles++
				if v != 2 && v != 4 {
					t.Errorf("start tile %d, expected 2 or 4", v)
				}
			}
		}
	}
	if tiles != 2 {
		t.Errorf("start tiles = %d, expected 2", tiles)
	}
	if g.State().Phase != core.PhaseIdle {
		t.Errorf("Phase = %v, expected idle", g.State().Phase)
	}
}

func TestMoveScenario(t *testing.T) {
	g := withBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(core.FrameOf(core.ActionLeft))

	if res.Scored != 4 || res.State.Score != 4 {
		t.Errorf("scored %d (score %d), expected 4", res.Scored, res.State.Score)
	}
	if g.grid.At(0, 0) != 4 {
		t.Errorf("At(0,0) = %d, expected 4", g.grid.At(0, 0))
	}
	if n := len(g.grid.EmptyCells()); n != 14 {
		t.Errorf("empty cells = %d, expected 14 (one spawn)", n)
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := withBoard(t, [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := g.Board()

	g.Step(core.FrameOf(core.ActionLeft))

	if !reflect.DeepEqual(g.Board(), before) {
		t.Error("a move that changed nothing spawned a tile")
	}
}

func TestSpawnValues(t *testing.T) {
	twos, fours := 0, 0
	for seed := range int64(200) {
		rt := testRuntime
		rt.Seed = seed
		g := New()
		g.ResetWith(rt, config.DefaultT2048Config())
		for _, row := range g.Board() {
			for _, v := range row {
				switch v {
				case 2:
					twos++
				case 4:
					fours++
				}
			}
		}
	}
	if twos+fours != 400 {
		t.Fatalf("spawned %d tiles, expected 400", twos+fours)
	}
	if fours == 0 || fours > twos {
		t.Errorf("twos/fours = %d/%d, expected mostly twos", twos, fours)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{"stuck", [][]int{
			{2, 4, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 2048, 4096},
			{8192, 16384, 32768, 65536},
		}, false},
		{"merge available", [][]int{
			{2, 2, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 2048, 4096},
			{8192, 16384, 32768, 65536},
		}, true},
		{"empty cell", [][]int{
			{2, 4, 8, 16},
			{32, 64, 128, 256},
			{512, 1024, 0, 4096},
			{8192, 16384, 32768, 65536},
		}, true},
	}
	for _, tt := range tests {
		if got := CanMove(gridOf(tt.rows)); got != tt.want {
			t.Errorf("%s: CanMove = %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestGameOver(t *testing.T) {
	// Sliding right fills the last gap with no merges left. Whatever spawns
	// at (0,0) sits beside 8 and above 16, so nothing can merge.
	g := withBoard(t, [][]int{
		{8, 0, 32, 2},
		{16, 64, 4, 256},
		{4, 2, 128, 8},
		{2, 512, 16, 1024},
	})

	g.Step(core.FrameOf(core.ActionRight))

	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestWinThenContinue(t *testing.T) {
	g := withBoard(t, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(core.FrameOf(core.ActionLeft))
	if g.State().Phase != core.PhaseWon {
		t.Fatalf("Phase = %v, expected won", g.State().Phase)
	}
	if g.Snapshot().Message == "" {
		t.Error("won snapshot should carry a message")
	}

	// Moves are ignored until the player confirms.
	before := g.Board()
	g.Step(core.FrameOf(core.ActionDown))
	if !reflect.DeepEqual(g.Board(), before) {
		t.Error("board changed while won")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	if g.State().Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, expected running", g.State().Phase)
	}

	// A second 2048 tile does not prompt again.
	g.grid = gridOf([][]int{
		{2048, 1024, 1024, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(core.FrameOf(core.ActionLeft))
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running after continuing", g.State().Phase)
	}
}

func TestLevelFollowsMilestones(t *testing.T) {
	tests := []struct {
		tile int
		want int
	}{
		{2, 1},
		{128, 2},
		{1024, 5},
		{2048, 6},
		{8192, 8},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.tile); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, expected %d", tt.tile, got, tt.want)
		}
	}
}

func TestPauseIgnoresMoves(t *testing.T) {
	g := withBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(core.FrameOf(core.ActionPause))
	before := g.Snapshot().Hash()
	g.Step(core.FrameOf(core.ActionLeft))
	if g.Snapshot().Hash() != before {
		t.Error("board changed while paused")
	}
}

func TestDeterministicSpawn(t *testing.T) {
	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	run := func() core.Snapshot {
		g := newTestGame(t)
		for i := range 100 {
			g.Step(core.FrameOf(moves[i%len(moves)]))
		}
		return g.Snapshot()
	}
	if run().Hash() != run().Hash() {
		t.Error("same seed and moves produced different boards")
	}
}

func TestRestartKeepsBest(t *testing.T) {
	fresh := newTestGame(t).Snapshot()
	g := withBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Step(core.FrameOf(core.ActionLeft))
	g.Step(core.FrameOf(core.ActionRestart))

	snap := g.Snapshot()
	if snap.Hash() != fresh.Hash() {
		t.Error("restart should reproduce the fresh game")
	}
	if snap.Best != 4 {
		t.Errorf("Best = %d, expected 4", snap.Best)
	}
}

func TestRender(t *testing.T) {
	g := withBoard(t, [][]int{
		{2048, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})
	s := core.NewScreen(80, 24)
	g.Render(s)

	var text strings.Builder
	for y := range s.Height() {
		text.WriteString(s.Row(y))
	}
	for _, want := range []string{"2048", "Classic 2048", "┼"} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("render missing %q", want)
		}
	}
}
