package core

// Phase is the game's lifecycle state. Exactly one phase holds at any tick.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
	PhaseWon
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Finished reports whether p ends a run, lost or won.
func (p Phase) Finished() bool {
	return p == PhaseOver || p == PhaseWon
}

// MarshalYAML encodes the phase by name.
func (p Phase) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Machine enforces the legal phase transitions:
//
//	Idle -> Running            Start
//	Running <-> Paused         TogglePause
//	Running -> Over            Lose
//	Running -> Won             Win
//	Won -> Running             Resume (next level/wave)
//	any -> Idle                Restart
//
// Rejected transitions return false and leave the phase unchanged.
type Machine struct {
	phase Phase
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Is reports whether the machine is in phase p.
func (m *Machine) Is(p Phase) bool {
	return m.phase == p
}

// Active reports whether the simulation should advance this tick.
func (m *Machine) Active() bool {
	return m.phase == PhaseRunning
}

// Start moves Idle to Running.
func (m *Machine) Start() bool {
	if m.phase != PhaseIdle {
		return false
	}
	m.phase = PhaseRunning
	return true
}

// TogglePause flips between Running and Paused.
func (m *Machine) TogglePause() bool {
	switch m.phase {
	case PhaseRunning:
		m.phase = PhasePaused
	case PhasePaused:
		m.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// Lose moves Running to Over.
func (m *Machine) Lose() bool {
	if m.phase != PhaseRunning {
		return false
	}
	m.phase = PhaseOver
	return true
}

// Win moves Running to Won.
func (m *Machine) Win() bool {
	if m.phase != PhaseRunning {
		return false
	}
	m.phase = PhaseWon
	return true
}

// Resume moves Won back to Running for the next level or wave.
func (m *Machine) Resume() bool {
	if m.phase != PhaseWon {
		return false
	}
	m.phase = PhaseRunning
	return true
}

// Restart returns to Idle from any phase. It is idempotent.
func (m *Machine) Restart() {
	m.phase = PhaseIdle
}

// HandleCommon applies the actions every game treats the same way:
// Pause toggles, and Confirm (or the start action) leaves Idle.
// It reports whether the simulation step should run this tick.
func (m *Machine) HandleCommon(in InputFrame, startOn ...Action) bool {
	if in.Has(ActionPause) {
		m.TogglePause()
	}
	if m.phase == PhaseIdle {
		if in.Has(ActionConfirm) {
			m.Start()
		}
		for _, a := range startOn {
			if in.Has(a) {
				m.Start()
				break
			}
		}
	}
	return m.Active()
}
