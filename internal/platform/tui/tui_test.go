package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	_ "github.com/vovakirdan/retro-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/retro-arcade/internal/games/t2048"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newGameModel(t *testing.T, id string, store *storage.Store) GameModel {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	return NewGameModel(g, GameOptions{Runtime: testRuntime, Store: store, SessionID: "test"})
}

// send feeds msg to the model and returns the updated model.
func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

// frames delivers n frames 20ms apart starting at t0.
func frames(t *testing.T, m GameModel, t0 time.Time, n int) (GameModel, time.Time) {
	t.Helper()
	for range n {
		t0 = t0.Add(20 * time.Millisecond)
		m = send(t, m, TickMsg(t0))
	}
	return m, t0
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGameKeyMap(t *testing.T) {
	km := DefaultGameKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{keyRune('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{keyRune('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{keyRune('p'), core.ActionPause},
		{keyRune('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{keyRune('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{keyRune('x'), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.expected {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{keyRune('k'), MenuActionUp},
		{keyRune('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{keyRune('b'), MenuActionBack},
		{keyRune('q'), MenuActionQuit},
		{keyRune('z'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestGameModelLatchesInput(t *testing.T) {
	m := newGameModel(t, "2048", nil)
	if m.Snapshot().Phase != core.PhaseIdle {
		t.Fatalf("Phase = %v, expected idle", m.Snapshot().Phase)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Snapshot().Phase != core.PhaseIdle {
		t.Error("key press changed state before a tick")
	}

	// The first frame only anchors the clock.
	m, _ = frames(t, m, time.Unix(0, 0), 2)
	if m.Snapshot().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", m.Snapshot().Phase)
	}
}

func TestGameModelBackPausesFirst(t *testing.T) {
	m := newGameModel(t, "breakout", nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, t0 := frames(t, m, time.Unix(0, 0), 2)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Fatal("Back while running should pause, not leave")
	}
	m, _ = frames(t, m, t0, 1)
	if m.Snapshot().Phase != core.PhasePaused {
		t.Fatalf("Phase = %v, expected paused", m.Snapshot().Phase)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("Back while paused should leave")
	}
	if m.View() != "" {
		t.Error("View should be empty after leaving")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newGameModel(t, "2048", nil)
	next, cmd := m.Update(keyRune('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
}

func TestGameModelView(t *testing.T) {
	m := newGameModel(t, "2048", nil)
	out := m.View()
	if !strings.Contains(out, "2048") {
		t.Error("view missing game title")
	}
	if !strings.Contains(out, "quit") {
		t.Error("view missing help bar")
	}
	if n := strings.Count(out, "\n"); n != testRuntime.ScreenH-1 {
		t.Errorf("view has %d line breaks, expected %d", n, testRuntime.ScreenH-1)
	}
}

func TestGameModelResizeKeepsState(t *testing.T) {
	m := newGameModel(t, "2048", nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = frames(t, m, time.Unix(0, 0), 2)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Snapshot().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v after resize, expected running", m.Snapshot().Phase)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelBlurSuspends(t *testing.T) {
	m := newGameModel(t, "breakout", nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, t0 := frames(t, m, time.Unix(0, 0), 3)
	tick := m.Snapshot().Tick

	m = send(t, m, tea.BlurMsg{})
	m, t0 = frames(t, m, t0, 10)
	if m.Snapshot().Tick != tick {
		t.Errorf("Tick = %d while unfocused, expected %d", m.Snapshot().Tick, tick)
	}

	m = send(t, m, tea.FocusMsg{})
	m, _ = frames(t, m, t0, 3)
	if m.Snapshot().Tick <= tick {
		t.Errorf("Tick = %d after focus, expected more than %d", m.Snapshot().Tick, tick)
	}
}

func TestGameModelUsesStoredBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordBest("2048", 512); err != nil {
		t.Fatal(err)
	}
	m := newGameModel(t, "2048", store)
	if m.Snapshot().Best != 512 {
		t.Errorf("Best = %d, expected 512", m.Snapshot().Best)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, testRuntime)
	if len(m.items) < 2 {
		t.Fatalf("menu has %d items, expected registered games", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("Selected() = nil after Enter")
	}
	if sel.GameID != m.items[1].GameID {
		t.Errorf("selected %q, expected %q", sel.GameID, m.items[1].GameID)
	}
}

func TestMenuShowsBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.RecordBest("breakout", 730); err != nil {
		t.Fatal(err)
	}
	m := NewMenuModel(store, testRuntime)
	if !strings.Contains(m.View(), "best 730") {
		t.Error("menu does not show the stored best")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testRuntime)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	next, _ = m.Update(keyRune('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestDifficultyPicker(t *testing.T) {
	m := NewDifficultyModel("Breakout", 80, 24)
	if !strings.Contains(m.View(), "B R E A K O U T") {
		t.Error("picker missing spaced title")
	}
	for range 3 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(DifficultyModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)

	if m.Selected() == nil || m.Selected().Preset != "hard" {
		t.Errorf("Selected() = %v, expected hard", m.Selected())
	}

	back, _ := NewDifficultyModel("Snake", 80, 24).Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !back.(DifficultyModel).WantsBack() {
		t.Error("Esc should go back")
	}
}

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{40, 300, 120} {
		if _, err := store.SaveScore("breakout", "0123456789abcdef", s, 2); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.RecordBest("breakout", 300); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	// Games are sorted by ID; move to breakout if needed.
	for i := 0; i < len(m.games) && m.games[m.gameCursor].ID != "breakout"; i++ {
		m.selectGame(1)
	}

	if len(m.scores) != 3 {
		t.Fatalf("len(scores) = %d, expected 3", len(m.scores))
	}
	rows := scoreRows(m.scores)
	if rows[0][1] != "300" || rows[0][2] != "2" {
		t.Errorf("top row = %v, expected score 300 level 2", rows[0])
	}
	if rows[0][3] != "0123456." {
		t.Errorf("session column = %q, expected truncated ID", rows[0][3])
	}
	if m.best != 300 {
		t.Errorf("best = %d, expected 300", m.best)
	}
	if !strings.Contains(m.View(), "Best: 300") {
		t.Error("view missing best score")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc should go back")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(2, 0, 'X', core.ColorRed)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "X") {
		t.Errorf("line 0 = %q, expected ab and X", lines[0])
	}
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime, "sess", log.New(io.Discard))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(SessionModel)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu", m.screen)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("entering a game should start its frame loop")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(SessionModel)
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after leaving an idle game", m.screen)
	}
	if m.quitting {
		t.Error("leaving a game should not end the session")
	}
}

func TestSSHServerShutdownClosesStoreLast(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		IdleTimeout: time.Minute,
		TickRate:    60,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.store == nil {
		t.Fatal("store not opened")
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
	if srv.store != nil {
		t.Error("store still open after Shutdown")
	}
}
