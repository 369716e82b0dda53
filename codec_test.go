package fstkv

import (
	"bytes"
	"testing"
)

func TestEncodeUintKnownValues(t *testing.T) {
	if got, _ := EncodeUint(0); !bytes.Equal(got, []byte{0x00}) {
		t.Errorf("EncodeUint(0) = % x", got)
	}
	if got, _ := EncodeUint(1); !bytes.Equal(got, []byte{0x08}) {
		t.Errorf("EncodeUint(1) = % x", got)
	}
}

func TestEncodeUintTooLarge(t *testing.T) {
	if _, err := EncodeUint(1 << 61); err == nil {
		t.Fatal("expected error for value >= 2^61")
	}
}

func TestDecodeUintRoundTrip(t *testing.T) {
	enc, err := EncodeUint(123456789)
	if err != nil {
		t.Fatal(err)
	}
	rest, v, err := DecodeUint(enc)
	if err != nil {
		t.Fatal(err)
	}
	if v != 123456789 || len(rest) != 0 {
		t.Errorf("got (%q, %d), want (\"\", 123456789)", rest, v)
	}
}
