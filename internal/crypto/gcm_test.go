package crypto

import (
	"bytes"
	"testing"
)

func TestAESGCM_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x07}, 32)
	plaintext := []byte("attested request payload")
	aad := []byte("request-id")

	iv, ciphertext, tag, err := AESGCMSeal(key, plaintext, aad)
	if err != nil {
		t.Fatalf("AESGCMSeal error: %v", err)
	}
	if len(iv) != GCMIVLength {
		t.Fatalf("iv length = %d, want %d", len(iv), GCMIVLength)
	}
	if len(tag) != GCMTagLength {
		t.Fatalf("tag length = %d, want %d", len(tag), GCMTagLength)
	}

	got, err := AESGCMOpen(key, iv, ciphertext, tag, aad)
	if err != nil {
		t.Fatalf("AESGCMOpen error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("decrypted payload differs from original")
	}
}

func TestAESGCM_FreshIVPerSeal(t *testing.T) {
	key := bytes.Repeat([]byte{0x07}, 32)

	iv1, _, _, err := AESGCMSeal(key, []byte("x"), nil)
	if err != nil {
		t.Fatalf("AESGCMSeal error: %v", err)
	}
	iv2, _, _, err := AESGCMSeal(key, []byte("x"), nil)
	if err != nil {
		t.Fatalf("AESGCMSeal error: %v", err)
	}
	if bytes.Equal(iv1, iv2) {
		t.Fatalf("expected a fresh iv per seal")
	}
}

func TestAESGCM_WrongAADFails(t *testing.T) {
	key := bytes.Repeat([]byte{0x07}, 32)

	iv, ciphertext, tag, err := AESGCMSeal(key, []byte("payload"), []byte("aad-a"))
	if err != nil {
		t.Fatalf("AESGCMSeal error: %v", err)
	}

	if _, err = AESGCMOpen(key, iv, ciphertext, tag, []byte("aad-b")); err == nil {
		t.Fatalf("expected decryption with wrong aad to fail")
	}
}

func TestAESGCM_MalformedFraming(t *testing.T) {
	key := bytes.Repeat([]byte{0x07}, 32)

	iv, ciphertext, tag, err := AESGCMSeal(key, []byte("payload"), nil)
	if err != nil {
		t.Fatalf("AESGCMSeal error: %v", err)
	}

	if _, err = AESGCMOpen(key, iv[:8], ciphertext, tag, nil); err == nil {
		t.Fatalf("expected short iv to be rejected")
	}
	if _, err = AESGCMOpen(key, iv, ciphertext, tag[:8], nil); err == nil {
		t.Fatalf("expected short tag to be rejected")
	}
}
