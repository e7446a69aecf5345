// Package headless drives a game without a terminal. The runner owns the
// clock and input buffer, steps the game once per due tick and hands each
// resulting snapshot to a Presenter.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Presenter receives a read-only snapshot after every tick.
type Presenter interface {
	Present(snap core.Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(core.Snapshot)

// Present calls f.
func (f PresenterFunc) Present(snap core.Snapshot) { f(snap) }

// ScoreSink persists finished runs. *storage.Store satisfies it.
type ScoreSink interface {
	SaveScore(gameID, sessionID string, score, level int) (int64, error)
	RecordBest(gameID string, score int) (bool, error)
}

// Options configure a Runner. Zero values are usable.
type Options struct {
	Runtime   core.RuntimeConfig
	Presenter Presenter
	Scores    ScoreSink
	SessionID string
	Logger    *log.Logger
	// MaxFrame caps one Advance call; 0 uses a fixed clock.
	MaxFrame time.Duration
}

// Runner steps one game from a clock and a latched input buffer.
type Runner struct {
	game      registry.Game
	runtime   core.RuntimeConfig
	clock     *core.Clock
	input     *core.InputBuffer
	presenter Presenter
	scores    ScoreSink
	sessionID string
	logger    *log.Logger

	last  core.Snapshot
	saved bool // score for the current Over already written
	best  int  // highest best score known to be persisted
}

// New resets game with opts.Runtime and returns a runner for it.
func New(game registry.Game, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := opts.Runtime.TickRateOrDefault()
	clock := core.NewFixedClock(rate)
	if opts.MaxFrame > 0 {
		clock = core.NewAccumulatorClock(rate, opts.MaxFrame)
	}

	r := &Runner{
		game:      game,
		runtime:   opts.Runtime,
		clock:     clock,
		input:     core.NewInputBuffer(),
		presenter: opts.Presenter,
		scores:    opts.Scores,
		sessionID: opts.SessionID,
		logger:    logger.With("game", game.ID()),
		best:      opts.Runtime.Best,
	}
	game.Reset(opts.Runtime)
	r.last = game.Snapshot()
	return r
}

// Press latches an action for the next tick.
func (r *Runner) Press(a core.Action) {
	r.input.Press(a)
}

// Snapshot returns the snapshot produced by the last tick.
func (r *Runner) Snapshot() core.Snapshot {
	return r.last
}

// Ticks returns the number of ticks run so far.
func (r *Runner) Ticks() uint64 {
	return r.clock.Ticks()
}

// Advance feeds elapsed wall time to the clock and runs every due tick.
// Latched input goes to the first of them only.
func (r *Runner) Advance(elapsed time.Duration) int {
	n := r.clock.Advance(elapsed)
	for range n {
		r.step(r.input.Drain())
	}
	return n
}

// Tick runs exactly one tick with the latched input.
func (r *Runner) Tick() {
	r.clock.Advance(r.clock.Interval())
	r.step(r.input.Drain())
}

func (r *Runner) step(in core.InputFrame) {
	before := r.last
	res := r.game.Step(in)
	r.last = r.game.Snapshot()

	st := res.State
	if st.Phase != before.Phase {
		r.logger.Debug("phase changed", "from", before.Phase, "to", st.Phase, "tick", r.last.Tick)
	}
	switch {
	case st.Phase == core.PhaseOver:
		if !r.saved {
			r.saved = true
			r.record(st)
		}
	case st.Phase.Finished() && !before.Phase.Finished():
		r.keepBest(st.Score)
	case st.Phase == core.PhaseIdle && before.Phase != core.PhaseIdle:
		// Restart drops the run; its score may still be a new best.
		r.saved = false
		r.keepBest(before.Score)
	}

	if r.presenter != nil {
		r.presenter.Present(r.last)
	}
}

// record writes a finished run. Storage errors are logged and dropped so
// the simulation keeps going.
func (r *Runner) record(st core.GameState) {
	r.logger.Info("game over", "score", st.Score, "level", st.Level)
	if r.scores == nil || st.Score <= 0 {
		return
	}
	if _, err := r.scores.SaveScore(r.game.ID(), r.sessionID, st.Score, st.Level); err != nil {
		r.logger.Warn("could not save score", "error", err)
	}
	r.keepBest(st.Score)
}

// keepBest persists score when it beats the best written so far.
func (r *Runner) keepBest(score int) {
	if r.scores == nil || score <= r.best {
		return
	}
	raised, err := r.scores.RecordBest(r.game.ID(), score)
	if err != nil {
		r.logger.Warn("could not record best score", "error", err)
		return
	}
	r.best = score
	if raised {
		r.logger.Info("new best score", "score", score)
	}
}

// Close persists the current score if it is a new best. Call it when the
// player leaves mid-run.
func (r *Runner) Close() {
	r.keepBest(r.last.Score)
}

// Suspend stops the clock; Advance runs no ticks until Continue.
func (r *Runner) Suspend() {
	r.clock.Pause()
}

// Continue restarts a suspended clock.
func (r *Runner) Continue() {
	r.clock.Resume()
}

// Suspended reports whether the clock is stopped.
func (r *Runner) Suspended() bool {
	return r.clock.Paused()
}

// Replay runs ticks ticks, latching the script's presses before each one.
// It stops early when ctx is cancelled and returns the final snapshot.
func (r *Runner) Replay(ctx context.Context, script *Script, ticks int) (core.Snapshot, error) {
	for i := range ticks {
		if err := ctx.Err(); err != nil {
			return r.last, err
		}
		for _, a := range script.At(i) {
			r.Press(a)
		}
		r.Tick()
	}
	return r.last, nil
}

// Run drives the game in real time until ctx is cancelled. Input arrives
// on actions; Press must not be called concurrently with Run.
func (r *Runner) Run(ctx context.Context, actions <-chan core.Action) error {
	t := time.NewTicker(r.clock.Interval())
	defer t.Stop()

	prev := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			r.Press(a)
		case now := <-t.C:
			r.Advance(now.Sub(prev))
			prev = now
		}
	}
}
