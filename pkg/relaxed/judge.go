package relaxed

import (
	"fmt"

	"vouch/typeguard-go/pkg/double"
	"vouch/typeguard-go/pkg/typeexpr"
)

// Mode is the process-wide permissiveness level. Levels are ordered;
// activation only ever raises the level.
type Mode int

const (
	ModeOff Mode = iota
	ModeInstanceDoubles
	ModeAllDoubles
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeInstanceDoubles:
		return "instance_doubles"
	case ModeAllDoubles:
		return "all_doubles"
	default:
		return fmt.Sprintf("unknown_mode_%d", int(m))
	}
}

// satisfies decides whether a classified double may stand in for the
// expected constraint under mode. Rules are tried in order and the first
// match wins; false means the original failure stands.
func satisfies(c classification, typ typeexpr.Type, mode Mode) bool {
	if mode == ModeOff || typ == nil {
		return false
	}
	switch t := typ.(type) {
	case typeexpr.Union:
		for _, member := range t.Members {
			if satisfies(c, member, mode) {
				return true
			}
		}
		return false
	case typeexpr.Nilable:
		// A double is never the nil arm; the inner constraint is what applies.
		return satisfies(c, t.Inner, mode)
	case typeexpr.ClassOf:
		switch c.kind {
		case double.KindClass:
			return mode >= ModeAllDoubles && c.verified.DescendsFrom(t.Class)
		case double.KindGeneric:
			return mode >= ModeAllDoubles
		default:
			// Instance and object doubles never satisfy class-object
			// constraints, whatever the mode.
			return false
		}
	case typeexpr.Instance:
		switch c.kind {
		case double.KindInstance:
			return c.verified.DescendsFrom(t.Class)
		case double.KindObject, double.KindGeneric:
			return mode >= ModeAllDoubles
		default:
			return false
		}
	}
	return false
}
