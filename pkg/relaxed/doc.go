// Package relaxed makes the check engine accept test doubles. Activating a
// mode wraps both of the engine's failure handler slots with an interceptor
// that classifies the offending value and, when the double stands in for a
// compatible type, swallows the failure; everything else is delegated
// unchanged to whatever handler was installed before activation.
//
// The two entry points are AllowInstanceDoubles (verifying-instance doubles
// only) and AllowDoubles (additionally class, object, and generic doubles).
// Both are idempotent and upgrade-only; Reset restores the engine exactly as
// it was and must run after every test that activated a mode.
package relaxed
