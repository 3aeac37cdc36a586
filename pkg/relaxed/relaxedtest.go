package relaxed

import "testing"

// Allow activates mode for the duration of a test and registers Reset as a
// cleanup, so forgiveness never leaks into later tests.
func Allow(tb testing.TB, mode Mode) {
	tb.Helper()
	switch mode {
	case ModeInstanceDoubles:
		AllowInstanceDoubles()
	case ModeAllDoubles:
		AllowDoubles()
	case ModeOff:
		// Nothing to activate; still register the cleanup so a test can
		// opt in later via the package entry points.
	default:
		tb.Fatalf("relaxed: unknown mode %v", mode)
	}
	tb.Cleanup(Reset)
}
