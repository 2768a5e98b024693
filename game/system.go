package game

// System represents one behavior executed once per tick.
type System interface {
	Execute(frame *Frame)
}

// StateReporter is implemented by systems that drive the session state. The
// scheduler reads the reported state after each execution.
type StateReporter interface {
	State() State
}

// PausedRunner is implemented by systems that keep executing while the
// session is paused or ended, such as renderers and debug overlays.
type PausedRunner interface {
	RunsWhilePaused() bool
}

func runsWhilePaused(system System) bool {
	r, ok := system.(PausedRunner)
	return ok && r.RunsWhilePaused()
}
