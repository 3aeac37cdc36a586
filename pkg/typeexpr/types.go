package typeexpr

import "strings"

// Type is a declared constraint checked against a runtime value.
type Type interface {
	Name() string
	Accepts(value any) bool
}

// Instance expects an instance of Class or of any class descending from it.
type Instance struct {
	Class *Class
}

func (t Instance) Name() string { return t.Class.Name() }

func (t Instance) Accepts(value any) bool {
	classed, ok := value.(Classed)
	if !ok {
		return false
	}
	return classed.RuntimeClass().DescendsFrom(t.Class)
}

// Union expects a value accepted by at least one member expression.
type Union struct {
	Members []Type
}

func (t Union) Name() string {
	names := make([]string, 0, len(t.Members))
	for _, member := range t.Members {
		names = append(names, member.Name())
	}
	return strings.Join(names, " | ")
}

func (t Union) Accepts(value any) bool {
	for _, member := range t.Members {
		if member.Accepts(value) {
			return true
		}
	}
	return false
}

// Nilable expects nil or a value accepted by the inner expression.
type Nilable struct {
	Inner Type
}

func (t Nilable) Name() string { return "Nilable(" + t.Inner.Name() + ")" }

func (t Nilable) Accepts(value any) bool {
	if value == nil {
		return true
	}
	return t.Inner.Accepts(value)
}

// ClassOf expects the class object itself (Class or a subclass of it),
// never an instance.
type ClassOf struct {
	Class *Class
}

func (t ClassOf) Name() string { return "ClassOf(" + t.Class.Name() + ")" }

func (t ClassOf) Accepts(value any) bool {
	class, ok := value.(*Class)
	if !ok {
		return false
	}
	return class.DescendsFrom(t.Class)
}

// InstanceOf builds an instance-type expression for class.
func InstanceOf(class *Class) Instance { return Instance{Class: class} }

// UnionOf builds a union over members.
func UnionOf(members ...Type) Union { return Union{Members: members} }

// NilableOf wraps inner in a nilable expression.
func NilableOf(inner Type) Nilable { return Nilable{Inner: inner} }

// ClassObjectOf builds a class-object constraint for class.
func ClassObjectOf(class *Class) ClassOf { return ClassOf{Class: class} }
