package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 32
	iterations = 100_000
)

// HashPassword derives a storable credential from plaintext using
// PBKDF2-SHA256 with a fresh random salt per call, so two credentials for
// the same plaintext never compare equal. The result is
// "<salt>.<derivedKey>", both segments base64url without padding.
func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plain), salt, iterations, keyLength, sha256.New)
	return base64.RawURLEncoding.EncodeToString(salt) + "." +
		base64.RawURLEncoding.EncodeToString(key), nil
}

// VerifyPassword reports whether plain matches a credential produced by
// HashPassword. Malformed credentials verify as false rather than
// erroring; an unrecognized credential is equivalent to a wrong password.
func VerifyPassword(plain, credential string) bool {
	saltPart, keyPart, ok := strings.Cut(credential, ".")
	if !ok {
		return false
	}
	salt, err := base64.RawURLEncoding.DecodeString(saltPart)
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := base64.RawURLEncoding.DecodeString(keyPart)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plain), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
