package check

import (
	"fmt"
	"sync"

	"vouch/typeguard-go/pkg/typeexpr"
)

// Failure carries the full payload of a failed type check: the offending
// value, the expected constraint, and a natural-language description of the
// checked position.
type Failure struct {
	Value       any
	Expected    typeexpr.Type
	Description string
}

// Handler decides the outcome of a failed check. Returning nil swallows the
// failure and the check is treated as passed; returning an error surfaces it
// to the caller. A handler that panics propagates the panic unchanged.
type Handler func(Failure) error

// TypeError is the error the default handler produces for a genuine mismatch.
type TypeError struct {
	Failure Failure
}

func (e *TypeError) Error() string {
	expected := "<nil>"
	if e.Failure.Expected != nil {
		expected = e.Failure.Expected.Name()
	}
	return fmt.Sprintf("check: %s: got %s, expected %s",
		e.Failure.Description, DescribeValue(e.Failure.Value), expected)
}

// DefaultHandler reports every failure as a *TypeError.
func DefaultHandler(f Failure) error {
	return &TypeError{Failure: f}
}

// DescribeValue renders a value for failure messages.
func DescribeValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case *typeexpr.Class:
		return v.String()
	case typeexpr.Classed:
		return fmt.Sprintf("%s instance", v.RuntimeClass().Name())
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T value", value)
	}
}

var (
	handlerMu     sync.Mutex
	inlineHandler Handler = DefaultHandler
	callHandler   Handler = DefaultHandler
)

// InlineHandler reports the handler currently installed for inline
// assertion failures.
func InlineHandler() Handler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	return inlineHandler
}

// SetInlineHandler replaces the inline assertion failure handler. A nil
// handler restores the default.
func SetInlineHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = DefaultHandler
	}
	inlineHandler = h
}

// CallHandler reports the handler currently installed for call-boundary
// failures.
func CallHandler() Handler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	return callHandler
}

// SetCallHandler replaces the call-boundary failure handler. A nil handler
// restores the default.
func SetCallHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = DefaultHandler
	}
	callHandler = h
}

// Let asserts that value satisfies typ, returning the value either way so
// assertions can be written inline. On mismatch the installed inline handler
// decides whether an error surfaces.
func Let(value any, typ typeexpr.Type, desc string) (any, error) {
	if typ == nil {
		return value, fmt.Errorf("check: %s: nil type expression", desc)
	}
	if typ.Accepts(value) {
		return value, nil
	}
	return value, InlineHandler()(Failure{Value: value, Expected: typ, Description: desc})
}
