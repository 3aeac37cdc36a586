// Package check is the runtime validation engine: inline Let assertions and
// call-boundary Signature checks over typeexpr constraints. Failures are
// routed through two process-wide handler slots (inline and call boundary)
// that callers may read and replace, which is the extension surface the
// relaxed package builds on.
package check
