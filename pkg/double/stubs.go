package double

import "fmt"

// UnstubbedError reports a call on a verifying double to a method that was
// never stubbed.
type UnstubbedError struct {
	Double string
	Method string
}

func (e *UnstubbedError) Error() string {
	return fmt.Sprintf("double: %s received unstubbed method %q", e.Double, e.Method)
}

// Stub registers the result the double returns when method is invoked, and
// returns the receiver so stubs can be declared inline.
func (d *Double) Stub(method string, result any) *Double {
	d.stubs[method] = result
	return d
}

// Invoke dispatches a method call on the double. Verifying doubles reject
// methods that were never stubbed; generic doubles answer nil for them.
func (d *Double) Invoke(method string, args ...any) (any, error) {
	if d == nil {
		return nil, fmt.Errorf("double: invoke %q on nil double", method)
	}
	if result, ok := d.stubs[method]; ok {
		return result, nil
	}
	if d.kind == KindGeneric {
		return nil, nil
	}
	return nil, &UnstubbedError{Double: d.String(), Method: method}
}
