package deb

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/blakesmith/ar"
)

// Verify checks the dpkg-sig style _gpgorigin member of a .deb against
// an ASCII-armored PGP keyring. The detached signature covers the
// concatenation of the debian-binary, control.tar* and data.tar*
// member payloads in container order; extra members are not covered.
//
// Verify never writes anything. It returns ErrNoSignature when the
// package has no _gpgorigin member, a FormatError when the container
// cannot be parsed, and a wrapped openpgp error when the signature
// does not check out.
func Verify(debData []byte, armoredKeyring string) error {
	keyring, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredKeyring))
	if err != nil {
		return fmt.Errorf("reading keyring: %w", err)
	}

	signed, sig, err := signedPayload(debData)
	if err != nil {
		return err
	}
	if sig == nil {
		return ErrNoSignature
	}

	_, err = openpgp.CheckDetachedSignature(keyring, bytes.NewReader(signed), bytes.NewReader(sig), nil)
	if err != nil {
		// dpkg-sig may armor the signature member.
		_, armErr := openpgp.CheckArmoredDetachedSignature(keyring, bytes.NewReader(signed), bytes.NewReader(sig), nil)
		if armErr != nil {
			return fmt.Errorf("signature verification failed: %w", err)
		}
	}
	return nil
}

// signedPayload walks the ar container collecting the bytes the
// signature covers and the signature member itself, if present.
func signedPayload(debData []byte) (signed, sig []byte, err error) {
	arR := ar.NewReader(bytes.NewReader(debData))
	var payload bytes.Buffer

	for {
		hdr, err := arR.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &FormatError{Err: fmt.Errorf("reading ar header: %w", err)}
		}

		name := memberName(hdr.Name)
		if hdr.Size < 0 || hdr.Size > int64(len(debData)) {
			return nil, nil, &FormatError{Member: name, Err: fmt.Errorf("implausible member size %d", hdr.Size)}
		}
		body := make([]byte, hdr.Size)
		if _, err := io.ReadFull(arR, body); err != nil {
			return nil, nil, &FormatError{Member: name, Err: fmt.Errorf("reading member: %w", err)}
		}

		switch {
		case name == string(PkgSignature):
			sig = body
		case name == string(PkgDebianBinary),
			strings.HasPrefix(name, string(PkgControlTar)),
			strings.HasPrefix(name, string(PkgDataTar)):
			payload.Write(body)
		}
	}
	return payload.Bytes(), sig, nil
}
