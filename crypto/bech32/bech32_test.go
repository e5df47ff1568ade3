package bech32

import (
	"bytes"
	"testing"
)

func TestEncodeDecode(t *testing.T) {
	payload := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

	enc, err := Encode("vest", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}

	hrp, got, err := Decode(enc)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "vest" {
		t.Fatalf("want vest prefix, got %q", hrp)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload corrupted: %X", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("this is not bech32"); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}
