// Package double provides the test-double facility: verifying doubles built
// against a real class, object, or class object, and generic named doubles
// with no verification target. Doubles never carry a runtime class, so every
// strict type check rejects them; the relaxed package inspects them through
// Introspectable to decide which rejections to forgive.
package double
