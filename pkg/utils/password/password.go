// Package password derives and verifies stored user credentials
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Separator joins the derived hash and its salt in the stored encoding.
// Hex never contains it, so splitting is unambiguous.
const Separator = "."

const (
	saltLen = 16
	keyLen  = 32

	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// Hash derives a salted scrypt hash of the password and returns it
// encoded as "hex(hash).hex(salt)". The salt is random per call, so
// hashing the same password twice yields different outputs.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %v", err)
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %v", err)
	}

	return hex.EncodeToString(derived) + Separator + hex.EncodeToString(salt), nil
}

type credentialKind int

const (
	kindPlain credentialKind = iota
	kindHashed
	kindMalformed
)

// Credential is a stored credential in one of two explicit forms: a
// legacy plaintext value kept for seeded accounts, or a salted scrypt
// hash. Malformed stored values parse to a credential that matches
// nothing.
type Credential struct {
	kind  credentialKind
	plain string
	hash  []byte
	salt  []byte
}

// Parse classifies a stored credential value. A value without the
// separator is a legacy plaintext credential; anything else must be
// two hex-encoded parts.
func Parse(stored string) Credential {
	if !strings.Contains(stored, Separator) {
		return Credential{kind: kindPlain, plain: stored}
	}

	parts := strings.SplitN(stored, Separator, 2)
	hash, err := hex.DecodeString(parts[0])
	if err != nil || len(hash) == 0 {
		return Credential{kind: kindMalformed}
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return Credential{kind: kindMalformed}
	}

	return Credential{kind: kindHashed, hash: hash, salt: salt}
}

// IsLegacy reports whether the credential is a plaintext value not yet
// migrated to the hashed form.
func (c Credential) IsLegacy() bool {
	return c.kind == kindPlain
}

// Matches reports whether the supplied password matches the credential.
// Comparison is constant-time for both forms.
func (c Credential) Matches(password string) bool {
	switch c.kind {
	case kindPlain:
		return subtle.ConstantTimeCompare([]byte(c.plain), []byte(password)) == 1
	case kindHashed:
		derived, err := scrypt.Key([]byte(password), c.salt, scryptN, scryptR, scryptP, len(c.hash))
		if err != nil {
			return false
		}
		return subtle.ConstantTimeCompare(c.hash, derived) == 1
	default:
		return false
	}
}

// Verify checks a supplied password against a stored credential value.
func Verify(password, stored string) bool {
	return Parse(stored).Matches(password)
}
