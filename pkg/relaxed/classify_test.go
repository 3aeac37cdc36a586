package relaxed

import (
	"testing"

	"vouch/typeguard-go/pkg/double"
	"vouch/typeguard-go/pkg/typeexpr"
)

func TestClassifyRecognizesEveryDoubleKind(t *testing.T) {
	person := typeexpr.NewClass("Person")
	cases := []struct {
		value    any
		kind     double.Kind
		verified *typeexpr.Class
	}{
		{double.InstanceOf(person), double.KindInstance, person},
		{double.ClassDouble(person), double.KindClass, person},
		{double.ObjectDouble(person.New()), double.KindObject, person},
		{double.Named("logger"), double.KindGeneric, nil},
	}
	for _, tc := range cases {
		cl, ok := classify(tc.value)
		if !ok {
			t.Fatalf("expected %v to classify as a double", tc.value)
		}
		if cl.kind != tc.kind {
			t.Fatalf("classified %v as %s, want %s", tc.value, cl.kind, tc.kind)
		}
		if cl.verified != tc.verified {
			t.Fatalf("classified %v with verified class %v, want %v", tc.value, cl.verified, tc.verified)
		}
	}
}

func TestClassifyRejectsNonDoubles(t *testing.T) {
	person := typeexpr.NewClass("Person")
	for _, value := range []any{nil, "plain string", 42, person, person.New()} {
		if _, ok := classify(value); ok {
			t.Fatalf("%v must not classify as a double", value)
		}
	}
}
