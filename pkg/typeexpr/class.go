package typeexpr

import "fmt"

// Class describes a runtime class or module. Ancestry is the parent chain
// plus any included mixins, walked transitively.
type Class struct {
	name   string
	parent *Class
	mixins []*Class
}

// NewClass constructs a class with no parent and no mixins.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Name reports the declared class name.
func (c *Class) Name() string {
	if c == nil {
		return "<nil class>"
	}
	return c.name
}

// Parent reports the direct superclass, or nil for a root class.
func (c *Class) Parent() *Class {
	if c == nil {
		return nil
	}
	return c.parent
}

// SetParent assigns the direct superclass and returns the receiver so class
// hierarchies can be declared inline in tests.
func (c *Class) SetParent(parent *Class) *Class {
	c.parent = parent
	return c
}

// Include adds mixins to the class's capability set and returns the receiver.
func (c *Class) Include(mixins ...*Class) *Class {
	c.mixins = append(c.mixins, mixins...)
	return c
}

// DescendsFrom reports whether other appears anywhere in the receiver's
// ancestry: itself, a parent, an included mixin, or any of their ancestors.
func (c *Class) DescendsFrom(other *Class) bool {
	if c == nil || other == nil {
		return false
	}
	return descendsFrom(c, other, make(map[*Class]bool))
}

func descendsFrom(c, other *Class, seen map[*Class]bool) bool {
	if c == nil || seen[c] {
		return false
	}
	seen[c] = true
	if c == other {
		return true
	}
	if descendsFrom(c.parent, other, seen) {
		return true
	}
	for _, mixin := range c.mixins {
		if descendsFrom(mixin, other, seen) {
			return true
		}
	}
	return false
}

// New constructs an instance of the class.
func (c *Class) New() *Object {
	return &Object{class: c}
}

func (c *Class) String() string {
	return fmt.Sprintf("class %s", c.Name())
}

// Classed is implemented by values that carry a runtime class. It is the
// probe the checker uses to recover a value's declared type.
type Classed interface {
	RuntimeClass() *Class
}

// Object is a plain instance of a Class.
type Object struct {
	class *Class
}

// RuntimeClass reports the class the object was constructed from.
func (o *Object) RuntimeClass() *Class {
	if o == nil {
		return nil
	}
	return o.class
}

func (o *Object) String() string {
	return fmt.Sprintf("%s instance", o.RuntimeClass().Name())
}
