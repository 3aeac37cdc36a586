package check

import (
	"fmt"

	"vouch/typeguard-go/pkg/typeexpr"
)

// Param is a declared parameter position in a Signature.
type Param struct {
	Name string
	Type typeexpr.Type
}

// Signature declares the parameter and return constraints enforced at a
// call boundary.
type Signature struct {
	name    string
	params  []Param
	returns typeexpr.Type
}

// NewSignature starts a signature declaration for the named callable.
func NewSignature(name string) *Signature {
	return &Signature{name: name}
}

// Param appends a declared parameter and returns the receiver.
func (s *Signature) Param(name string, typ typeexpr.Type) *Signature {
	s.params = append(s.params, Param{Name: name, Type: typ})
	return s
}

// Returns declares the return constraint and returns the receiver.
func (s *Signature) Returns(typ typeexpr.Type) *Signature {
	s.returns = typ
	return s
}

// Name reports the callable the signature was declared for.
func (s *Signature) Name() string { return s.name }

// CheckArgs validates args against the declared parameters in order,
// routing each mismatch through the call-boundary handler and stopping at
// the first failure that is not swallowed. Arity mismatches are reported
// directly; they are never a forgivable type failure.
func (s *Signature) CheckArgs(args ...any) error {
	if len(args) != len(s.params) {
		return fmt.Errorf("check: %s: expected %d arguments, got %d", s.name, len(s.params), len(args))
	}
	for i, param := range s.params {
		if param.Type == nil {
			return fmt.Errorf("check: %s: parameter %q has nil type expression", s.name, param.Name)
		}
		if param.Type.Accepts(args[i]) {
			continue
		}
		failure := Failure{
			Value:       args[i],
			Expected:    param.Type,
			Description: fmt.Sprintf("parameter %q of %s", param.Name, s.name),
		}
		if err := CallHandler()(failure); err != nil {
			return err
		}
	}
	return nil
}

// CheckReturn validates the callable's result against the declared return
// constraint through the call-boundary handler. A signature with no declared
// return accepts anything.
func (s *Signature) CheckReturn(value any) error {
	if s.returns == nil || s.returns.Accepts(value) {
		return nil
	}
	failure := Failure{
		Value:       value,
		Expected:    s.returns,
		Description: fmt.Sprintf("return value of %s", s.name),
	}
	return CallHandler()(failure)
}
