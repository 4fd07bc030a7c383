package deb

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

func generateTestKey(t *testing.T) *openpgp.Entity {
	t.Helper()
	entity, err := openpgp.NewEntity("Test", "test", "test@example.com", nil)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return entity
}

func armoredPublicKey(t *testing.T, entity *openpgp.Entity) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatalf("armor encode failed: %v", err)
	}
	if err := entity.Serialize(w); err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	w.Close()
	return buf.String()
}

// signedTestDeb builds a package carrying a _gpgorigin signature over
// the debian-binary, control and data members, the dpkg-sig layout.
func signedTestDeb(t *testing.T, entity *openpgp.Entity, dataMember []byte) []byte {
	t.Helper()
	members := []arMember{
		{string(PkgDebianBinary), []byte("2.0\n")},
		{"control.tar.gz", controlTarGz(t)},
		{"data.tar.gz", dataMember},
	}

	var payload bytes.Buffer
	for _, m := range members {
		payload.Write(m.body)
	}
	var sig bytes.Buffer
	if err := openpgp.DetachSign(&sig, entity, bytes.NewReader(payload.Bytes()), nil); err != nil {
		t.Fatalf("detach sign failed: %v", err)
	}

	members = append(members, arMember{string(PkgSignature), sig.Bytes()})
	return buildDeb(t, members...)
}

func TestVerifySigned(t *testing.T) {
	entity := generateTestKey(t)
	debData := signedTestDeb(t, entity, dataTarGz(t))

	if err := Verify(debData, armoredPublicKey(t, entity)); err != nil {
		t.Fatalf("Verify rejected a valid signature: %v", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	entity := generateTestKey(t)
	debData := signedTestDeb(t, entity, dataTarGz(t))

	// Rewrite the debian-binary payload, which the signature covers.
	tampered := bytes.Replace(debData, []byte("2.0\n"), []byte("9.9\n"), 1)
	if bytes.Equal(tampered, debData) {
		t.Fatal("tampering had no effect")
	}
	if err := Verify(tampered, armoredPublicKey(t, entity)); err == nil {
		t.Fatal("Verify accepted a tampered package")
	}
}

func TestVerifyWrongKey(t *testing.T) {
	signer := generateTestKey(t)
	other := generateTestKey(t)
	debData := signedTestDeb(t, signer, dataTarGz(t))

	if err := Verify(debData, armoredPublicKey(t, other)); err == nil {
		t.Fatal("Verify accepted a signature from an unknown key")
	}
}

func TestVerifyUnsigned(t *testing.T) {
	entity := generateTestKey(t)
	debData := buildDeb(t,
		arMember{string(PkgDebianBinary), []byte("2.0\n")},
		arMember{"control.tar.gz", controlTarGz(t)},
	)

	err := Verify(debData, armoredPublicKey(t, entity))
	if !errors.Is(err, ErrNoSignature) {
		t.Fatalf("expected ErrNoSignature, got %v", err)
	}
}

func TestVerifyCorruptMemberSize(t *testing.T) {
	entity := generateTestKey(t)

	for _, size := range []string{"-1", "9999999999"} {
		err := Verify(corruptSizeDeb(size), armoredPublicKey(t, entity))
		if err == nil {
			t.Fatalf("size %s: expected an error", size)
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("size %s: expected ErrFormat, got %v", size, err)
		}
	}
}

func TestVerifyBadKeyring(t *testing.T) {
	entity := generateTestKey(t)
	debData := signedTestDeb(t, entity, dataTarGz(t))

	if err := Verify(debData, "not a keyring"); err == nil {
		t.Fatal("Verify accepted a malformed keyring")
	}
}
