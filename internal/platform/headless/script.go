package headless

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Press is one scripted input: the actions latched before the given tick.
type Press struct {
	Tick    int      `yaml:"tick"`
	Actions []string `yaml:"actions,flow"`
}

// Script is an ordered list of presses replayed by the runner.
type Script struct {
	Presses []Press `yaml:"presses"`
	byTick  map[int][]core.Action
}

// ParseScript reads the compact form "tick:Action[+Action] ...",
// for example "0:Confirm 12:Left 30:Fire+Right".
func ParseScript(s string) (*Script, error) {
	var sc Script
	for _, tok := range strings.Fields(s) {
		at, acts, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, fmt.Errorf("headless: bad script entry %q", tok)
		}
		tick, err := strconv.Atoi(at)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("headless: bad tick in %q", tok)
		}
		sc.Presses = append(sc.Presses, Press{Tick: tick, Actions: strings.Split(acts, "+")})
	}
	if err := sc.compile(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadScript reads a YAML script.
func LoadScript(r io.Reader) (*Script, error) {
	var sc Script
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("headless: cannot decode script: %w", err)
	}
	if err := sc.compile(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (s *Script) compile() error {
	s.byTick = make(map[int][]core.Action, len(s.Presses))
	for _, p := range s.Presses {
		for _, name := range p.Actions {
			a, ok := core.ParseAction(name)
			if !ok || a == core.ActionNone {
				return fmt.Errorf("headless: unknown action %q at tick %d", name, p.Tick)
			}
			s.byTick[p.Tick] = append(s.byTick[p.Tick], a)
		}
	}
	slices.SortStableFunc(s.Presses, func(a, b Press) int { return a.Tick - b.Tick })
	return nil
}

// At returns the actions scheduled for tick.
func (s *Script) At(tick int) []core.Action {
	if s == nil {
		return nil
	}
	return s.byTick[tick]
}

// Len returns the tick of the last press plus one.
func (s *Script) Len() int {
	if s == nil || len(s.Presses) == 0 {
		return 0
	}
	return s.Presses[len(s.Presses)-1].Tick + 1
}
