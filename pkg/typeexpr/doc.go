// Package typeexpr models the declared constraints the runtime checker
// validates values against: plain instance types, unions, nilable wrappers,
// and class-object constraints. It also carries the class/mixin model used
// to answer ancestry questions during validation.
package typeexpr
