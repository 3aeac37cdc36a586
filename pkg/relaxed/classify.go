package relaxed

import (
	"vouch/typeguard-go/pkg/double"
	"vouch/typeguard-go/pkg/typeexpr"
)

// classification tags a value recognized as a double with its construction
// kind and, for verifying kinds, the real class it stands in for.
type classification struct {
	kind     double.Kind
	verified *typeexpr.Class
}

// classify probes whether value is a double. It never fails; the second
// result is false for anything that is not a double, which leaves the
// original failure handling untouched.
func classify(value any) (classification, bool) {
	if value == nil {
		return classification{}, false
	}
	d, ok := value.(double.Introspectable)
	if !ok {
		return classification{}, false
	}
	return classification{kind: d.Kind(), verified: d.VerifiedClass()}, true
}
