package double

import (
	"fmt"

	"github.com/google/uuid"

	"vouch/typeguard-go/pkg/typeexpr"
)

// Kind identifies how a double was constructed.
type Kind int

const (
	KindGeneric Kind = iota
	KindInstance
	KindClass
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindInstance:
		return "instance"
	case KindClass:
		return "class"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Introspectable is the surface a classifier needs from any double
// implementation: its construction kind and, for verifying kinds, the real
// class it stands in for.
type Introspectable interface {
	Kind() Kind
	VerifiedClass() *typeexpr.Class
}

// Double is a test stand-in. Verifying doubles carry the class they were
// built against; generic doubles carry only a name.
type Double struct {
	name     string
	id       string
	kind     Kind
	verified *typeexpr.Class
	stubs    map[string]any
}

func newDouble(name string, kind Kind, verified *typeexpr.Class) *Double {
	return &Double{
		name:     name,
		id:       uuid.New().String(),
		kind:     kind,
		verified: verified,
		stubs:    make(map[string]any),
	}
}

// InstanceOf builds a verifying-instance double standing in for an instance
// of class.
func InstanceOf(class *typeexpr.Class) *Double {
	return newDouble(class.Name(), KindInstance, class)
}

// ClassDouble builds a verifying-class double standing in for the class
// object itself, not an instance of it.
func ClassDouble(class *typeexpr.Class) *Double {
	return newDouble(class.Name(), KindClass, class)
}

// ObjectDouble builds a verifying double against a concrete instance; the
// verified class is that instance's runtime class.
func ObjectDouble(obj typeexpr.Classed) *Double {
	class := obj.RuntimeClass()
	return newDouble(class.Name(), KindObject, class)
}

// Named builds a generic double with no verification target.
func Named(name string) *Double {
	return newDouble(name, KindGeneric, nil)
}

// Kind reports how the double was constructed.
func (d *Double) Kind() Kind {
	if d == nil {
		return KindGeneric
	}
	return d.kind
}

// VerifiedClass reports the class a verifying double stands in for, or nil
// for generic doubles.
func (d *Double) VerifiedClass() *typeexpr.Class {
	if d == nil {
		return nil
	}
	return d.verified
}

// ID reports the double's identity token, used for equality and logging
// only, never for type matching.
func (d *Double) ID() string {
	if d == nil {
		return ""
	}
	return d.id
}

func (d *Double) String() string {
	if d == nil {
		return "double(<nil>)"
	}
	return fmt.Sprintf("double(%s %s)", d.kind, d.name)
}
