package fstkv

import (
	"errors"
	"testing"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	e1 := wrapErr(KindValue, "a", ErrOutOfOrder)
	e2 := wrapErr(KindValue, "b", ErrValueTooLarge)
	e3 := wrapErr(KindIO, "c", nil)

	if !errors.Is(e1, &Error{Kind: KindValue}) {
		t.Error("expected e1 to match KindValue")
	}
	if !errors.Is(e2, &Error{Kind: KindValue}) {
		t.Error("expected e2 to match KindValue")
	}
	if errors.Is(e3, &Error{Kind: KindValue}) {
		t.Error("expected e3 not to match KindValue")
	}
}

func TestErrorUnwrap(t *testing.T) {
	e := wrapErr(KindValue, "wrapped", ErrOutOfOrder)
	if !errors.Is(e, ErrOutOfOrder) {
		t.Error("expected Unwrap chain to reach ErrOutOfOrder")
	}
}

func TestKeyNotFoundSentinel(t *testing.T) {
	m := buildMemMap(t, []Item{{[]byte("a"), 1}})
	_, err := m.MustGet([]byte("missing"))
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}
