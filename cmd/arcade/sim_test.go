package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func runArcade(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimPrintsSnapshot(t *testing.T) {
	out, err := runArcade(t, "sim", "2048", "--seed", "5", "--ticks", "10", "--script", "0:Confirm 2:Left 4:Up")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}

	var snap map[string]any
	if err := yaml.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if snap["game"] != "2048" {
		t.Errorf("game = %v, expected 2048", snap["game"])
	}
	if _, ok := snap["grid"]; !ok {
		t.Error("snapshot has no grid")
	}
}

func TestSimIsDeterministic(t *testing.T) {
	args := []string{"sim", "snake", "--seed", "11", "--ticks", "120", "--script", "0:Confirm 20:Down 40:Left"}
	first, err := runArcade(t, args...)
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	second, err := runArcade(t, args...)
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	if first != second {
		t.Errorf("same seed and script gave different snapshots:\n%s\n---\n%s", first, second)
	}
}

func TestSimRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown game", []string{"sim", "asteroids"}},
		{"bad script", []string{"sim", "tetris", "--script", "zero:Confirm"}},
		{"unknown action", []string{"sim", "tetris", "--script", "0:Jump"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runArcade(t, tt.args...); err == nil {
				t.Errorf("arcade %v succeeded, expected an error", tt.args)
			}
		})
	}
}

func TestHasDifficulty(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"snake", true},
		{"snake_plus", true},
		{"breakout", true},
		{"tetris", true},
		{"invaders", true},
		{"2048", false},
	}
	for _, tt := range tests {
		if got := hasDifficulty(tt.id); got != tt.want {
			t.Errorf("hasDifficulty(%q) = %v, expected %v", tt.id, got, tt.want)
		}
	}
}

func TestPlayHelpMatchesControls(t *testing.T) {
	if !strings.Contains(playCmd.Long, "Fire / launch / hard drop") {
		t.Error("play help does not describe Space for these games")
	}
	if strings.Contains(playCmd.Long, "flap") {
		t.Error("play help mentions a control no game has")
	}
}
