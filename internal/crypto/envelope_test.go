package crypto

import (
	"bytes"
	"testing"
)

func TestEnvelope_SealOpenRoundTrip(t *testing.T) {
	sealer := NewEnvelopeSealer()

	masterKey := bytes.Repeat([]byte{0xAA}, 32)
	encKey := bytes.Repeat([]byte{0xBB}, 32)

	envelope, err := sealer.Seal(masterKey, encKey)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if len(envelope) != EnvelopeLength {
		t.Fatalf("envelope length = %d, want %d", len(envelope), EnvelopeLength)
	}

	got, err := sealer.Open(envelope, encKey)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if !bytes.Equal(got, masterKey) {
		t.Fatalf("recovered master key differs from original")
	}
}

func TestEnvelope_Deterministic(t *testing.T) {
	sealer := NewEnvelopeSealer()

	masterKey := bytes.Repeat([]byte{0xAA}, 32)
	encKey := bytes.Repeat([]byte{0xBB}, 32)

	e1, err := sealer.Seal(masterKey, encKey)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	e2, err := sealer.Seal(masterKey, encKey)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}
	if !bytes.Equal(e1, e2) {
		t.Fatalf("expected sealing to be deterministic")
	}
}

func TestEnvelope_WrongKeyFails(t *testing.T) {
	sealer := NewEnvelopeSealer()

	masterKey := bytes.Repeat([]byte{0xAA}, 32)
	encKey := bytes.Repeat([]byte{0xBB}, 32)
	otherKey := bytes.Repeat([]byte{0xCC}, 32)

	envelope, err := sealer.Seal(masterKey, encKey)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	if _, err = sealer.Open(envelope, otherKey); err == nil {
		t.Fatalf("expected Open with wrong key to fail")
	}
}

func TestEnvelope_TamperedCiphertextFails(t *testing.T) {
	sealer := NewEnvelopeSealer()

	masterKey := bytes.Repeat([]byte{0xAA}, 32)
	encKey := bytes.Repeat([]byte{0xBB}, 32)

	envelope, err := sealer.Seal(masterKey, encKey)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	for _, idx := range []int{0, EnvelopeIVLength, EnvelopeLength - 1} {
		tampered := bytes.Clone(envelope)
		tampered[idx] ^= 0x01
		if _, err = sealer.Open(tampered, encKey); err == nil {
			t.Fatalf("expected Open of envelope tampered at byte %d to fail", idx)
		}
	}
}

func TestEnvelope_LengthViolations(t *testing.T) {
	sealer := NewEnvelopeSealer()

	key32 := bytes.Repeat([]byte{0x01}, 32)

	if _, err := sealer.Seal(key32[:16], key32); err == nil {
		t.Fatalf("expected Seal to reject short master key")
	}
	if _, err := sealer.Seal(key32, key32[:16]); err == nil {
		t.Fatalf("expected Seal to reject short encryption key")
	}
	if _, err := sealer.Open(key32, key32); err == nil {
		t.Fatalf("expected Open to reject short envelope")
	}
}
