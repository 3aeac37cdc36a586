package relaxed

import (
	"sync"

	"vouch/typeguard-go/pkg/check"
)

// manager owns the process-wide mode flag and the handler chain installed
// into the engine's two extension points. All mutation goes through
// activate and reset.
type manager struct {
	mu         sync.Mutex
	mode       Mode
	installed  bool
	prevInline check.Handler
	prevCall   check.Handler
}

var state manager

// AllowInstanceDoubles forgives type-check failures caused by
// verifying-instance doubles standing in for the expected type. Idempotent;
// never downgrades an earlier AllowDoubles.
func AllowInstanceDoubles() {
	state.activate(ModeInstanceDoubles)
}

// AllowDoubles forgives failures caused by any double kind: instance, class
// (against class-object constraints), object, and generic. Idempotent.
func AllowDoubles() {
	state.activate(ModeAllDoubles)
}

// Reset removes the installed wrappers, restoring the handlers captured at
// activation, and turns forgiveness off. Safe to call when nothing was ever
// activated; meant to run as an unconditional teardown after every test
// that called an activation entry point.
func Reset() {
	state.reset()
}

// Active reports whether any forgiveness mode is currently installed.
func Active() bool {
	return CurrentMode() != ModeOff
}

// CurrentMode reports the active permissiveness level.
func CurrentMode() Mode {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.mode
}

func (m *manager) activate(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mode > m.mode {
		m.mode = mode
	}
	if m.installed {
		return
	}
	m.prevInline = check.InlineHandler()
	m.prevCall = check.CallHandler()
	check.SetInlineHandler(m.wrap(m.prevInline))
	check.SetCallHandler(m.wrap(m.prevCall))
	m.installed = true
}

func (m *manager) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.installed {
		check.SetInlineHandler(m.prevInline)
		check.SetCallHandler(m.prevCall)
		m.prevInline = nil
		m.prevCall = nil
		m.installed = false
	}
	m.mode = ModeOff
}

// wrap builds the interceptor installed into one handler slot. prev is the
// handler captured at install time; it receives the identical failure
// payload whenever the double is not forgiven, and its errors or panics
// propagate untouched.
func (m *manager) wrap(prev check.Handler) check.Handler {
	return func(f check.Failure) error {
		if c, ok := classify(f.Value); ok && satisfies(c, f.Expected, m.currentMode()) {
			return nil
		}
		if prev == nil {
			return check.DefaultHandler(f)
		}
		return prev(f)
	}
}

func (m *manager) currentMode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}
