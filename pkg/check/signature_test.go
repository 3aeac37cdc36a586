package check

import (
	"errors"
	"strings"
	"testing"

	"vouch/typeguard-go/pkg/typeexpr"
)

func TestSignatureCheckArgsAccepts(t *testing.T) {
	person := typeexpr.NewClass("Person")
	integer := typeexpr.NewClass("Integer")
	sig := NewSignature("enroll").
		Param("who", typeexpr.InstanceOf(person)).
		Param("year", typeexpr.InstanceOf(integer))
	if err := sig.CheckArgs(person.New(), integer.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSignatureCheckArgsReportsOffendingParameter(t *testing.T) {
	person := typeexpr.NewClass("Person")
	sig := NewSignature("enroll").Param("who", typeexpr.InstanceOf(person))
	err := sig.CheckArgs("nope")
	var typeErr *TypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected *TypeError, got %v", err)
	}
	if !strings.Contains(typeErr.Failure.Description, `parameter "who" of enroll`) {
		t.Fatalf("unexpected description %q", typeErr.Failure.Description)
	}
}

func TestSignatureCheckArgsArityIsNotForgivable(t *testing.T) {
	t.Cleanup(func() { SetCallHandler(DefaultHandler) })
	SetCallHandler(func(Failure) error { return nil })
	person := typeexpr.NewClass("Person")
	sig := NewSignature("enroll").Param("who", typeexpr.InstanceOf(person))
	if err := sig.CheckArgs(); err == nil {
		t.Fatalf("arity mismatch must surface even with a swallowing handler")
	}
}

func TestSignatureFailuresRouteThroughCallSlot(t *testing.T) {
	t.Cleanup(func() {
		SetInlineHandler(DefaultHandler)
		SetCallHandler(DefaultHandler)
	})
	inlineCalls, callCalls := 0, 0
	SetInlineHandler(func(Failure) error { inlineCalls++; return nil })
	SetCallHandler(func(Failure) error { callCalls++; return nil })

	person := typeexpr.NewClass("Person")
	sig := NewSignature("enroll").Param("who", typeexpr.InstanceOf(person))
	if err := sig.CheckArgs("nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if callCalls != 1 || inlineCalls != 0 {
		t.Fatalf("expected call slot only, got inline=%d call=%d", inlineCalls, callCalls)
	}
}

func TestSignatureCheckReturn(t *testing.T) {
	person := typeexpr.NewClass("Person")
	sig := NewSignature("lookup").Returns(typeexpr.NilableOf(typeexpr.InstanceOf(person)))
	if err := sig.CheckReturn(nil); err != nil {
		t.Fatalf("nilable return must accept nil: %v", err)
	}
	if err := sig.CheckReturn(person.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sig.CheckReturn("nope"); err == nil {
		t.Fatalf("expected mismatched return to fail")
	}
	if err := NewSignature("fire").CheckReturn("anything"); err != nil {
		t.Fatalf("undeclared return must accept anything: %v", err)
	}
}
