package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-unlock/internal/config"
	"github.com/MKhiriev/go-pass-unlock/models"
)

// cheap Argon2id costs so the suite stays fast
const (
	testOpsLimit = 1
	testMemLimit = 64 * 1024
)

func testParams(salt []byte) models.KDFParams {
	return models.KDFParamsFromSRP(models.SRPAttributes{
		KEKSalt:  base64.StdEncoding.EncodeToString(salt),
		OpsLimit: testOpsLimit,
		MemLimit: testMemLimit,
	})
}

func TestDeriveKEK_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})
	params := testParams(bytes.Repeat([]byte{0xAB}, SaltSize))

	k1, err := svc.DeriveKEK("correct horse battery staple", params)
	if err != nil {
		t.Fatalf("DeriveKEK error: %v", err)
	}
	k2, err := svc.DeriveKEK("correct horse battery staple", params)
	if err != nil {
		t.Fatalf("DeriveKEK error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("KEK length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected KEKs to match for same password+params")
	}
}

func TestDeriveKEK_AnyInputChangeProducesDifferentKEK(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})
	base := testParams(bytes.Repeat([]byte{0x01}, SaltSize))

	ref, err := svc.DeriveKEK("same password", base)
	if err != nil {
		t.Fatalf("DeriveKEK error: %v", err)
	}

	otherSalt := testParams(bytes.Repeat([]byte{0x02}, SaltSize))
	moreOps := base
	moreOps.OpsLimit = 2
	moreMem := base
	moreMem.MemLimit = 2 * testMemLimit

	tests := []struct {
		name     string
		password string
		params   models.KDFParams
	}{
		{name: "password", password: "same passwore", params: base},
		{name: "salt", password: "same password", params: otherSalt},
		{name: "opsLimit", password: "same password", params: moreOps},
		{name: "memLimit", password: "same password", params: moreMem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.DeriveKEK(tt.password, tt.params)
			if err != nil {
				t.Fatalf("DeriveKEK error: %v", err)
			}
			if bytes.Equal(ref, got) {
				t.Fatalf("expected different KEK when %s changes", tt.name)
			}
		})
	}
}

func TestDeriveKEK_WeakDevice(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{MaxMemLimit: 64 * 1024 * 1024, MaxOpsLimit: 4})
	salt := bytes.Repeat([]byte{0x03}, SaltSize)

	tooMuchMem := testParams(salt)
	tooMuchMem.MemLimit = 64*1024*1024 + 1024
	tooManyOps := testParams(salt)
	tooManyOps.OpsLimit = 5
	zeroOps := testParams(salt)
	zeroOps.OpsLimit = 0
	tinyMem := testParams(salt)
	tinyMem.MemLimit = 1024

	for name, params := range map[string]models.KDFParams{
		"memory above budget": tooMuchMem,
		"ops above budget":    tooManyOps,
		"zero ops":            zeroOps,
		"memory below min":    tinyMem,
	} {
		t.Run(name, func(t *testing.T) {
			kek, err := svc.DeriveKEK("pw", params)
			if !errors.Is(err, ErrWeakDevice) {
				t.Fatalf("expected ErrWeakDevice, got %v", err)
			}
			if kek != nil {
				t.Fatalf("expected no KEK on failure")
			}
		})
	}
}

func TestDeriveKEK_InvalidParams(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})
	good := testParams(bytes.Repeat([]byte{0x04}, SaltSize))

	badB64 := good
	badB64.Salt = "%%%"
	shortSalt := testParams([]byte("short"))
	noSource := good
	noSource.Source = 0

	tests := []struct {
		name     string
		password string
		params   models.KDFParams
	}{
		{name: "empty password", password: "", params: good},
		{name: "salt not base64", password: "pw", params: badB64},
		{name: "salt wrong length", password: "pw", params: shortSalt},
		{name: "unknown source", password: "pw", params: noSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DeriveKEK(tt.password, tt.params)
			if !errors.Is(err, ErrInvalidKDFParams) {
				t.Fatalf("expected ErrInvalidKDFParams, got %v", err)
			}
		})
	}
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})

	masterKey := bytes.Repeat([]byte{0xDD}, KeySize)
	kek := bytes.Repeat([]byte{0x2A}, KeySize)

	enc, nonce, err := svc.WrapKey(masterKey, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	if len(nonce) != NonceSize {
		t.Fatalf("nonce length = %d, want %d", len(nonce), NonceSize)
	}

	got, err := svc.UnwrapKey(enc, nonce, kek)
	if err != nil {
		t.Fatalf("UnwrapKey error: %v", err)
	}
	if !bytes.Equal(got, masterKey) {
		t.Fatalf("unwrapped key mismatch")
	}
}

func TestUnwrapKey_WrongKEK(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})

	masterKey := bytes.Repeat([]byte{0xDD}, KeySize)
	kek := bytes.Repeat([]byte{0x2A}, KeySize)

	enc, nonce, err := svc.WrapKey(masterKey, kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	wrong := bytes.Clone(kek)
	wrong[0] ^= 0x01

	got, err := svc.UnwrapKey(enc, nonce, wrong)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no plaintext on failure")
	}
}

func TestUnwrapKey_TamperedCiphertext(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})
	kek := bytes.Repeat([]byte{0x2A}, KeySize)

	enc, nonce, err := svc.WrapKey([]byte("master"), kek)
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}
	enc[len(enc)-1] ^= 0xFF

	if _, err = svc.UnwrapKey(enc, nonce, kek); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestUnwrapKey_InvalidEnvelope(t *testing.T) {
	svc := NewKeyChainService(config.ClientCrypto{})
	kek := bytes.Repeat([]byte{0x2A}, KeySize)
	nonce := bytes.Repeat([]byte{0x01}, NonceSize)

	if _, err := svc.UnwrapKey(make([]byte, 40), nonce[:12], kek); !errors.Is(err, ErrInvalidEnvelope) {
		t.Fatalf("short nonce: expected ErrInvalidEnvelope, got %v", err)
	}
	if _, err := svc.UnwrapKey(make([]byte, 40), nonce, kek[:16]); !errors.Is(err, ErrInvalidEnvelope) {
		t.Fatalf("short kek: expected ErrInvalidEnvelope, got %v", err)
	}
	if _, err := svc.UnwrapKey(make([]byte, 4), nonce, kek); !errors.Is(err, ErrInvalidEnvelope) {
		t.Fatalf("short ciphertext: expected ErrInvalidEnvelope, got %v", err)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	if !bytes.Equal(b, []byte{0, 0, 0}) {
		t.Fatalf("expected zeroed slice, got %v", b)
	}
	Wipe(nil)
}
