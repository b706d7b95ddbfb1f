// Package token issues and verifies the bearer tokens handed to clients.
// A token is "<payload>.<signature>": a base64url JSON payload carrying
// the user id and issuance time, and a base64url HMAC-SHA256 signature
// over the encoded payload. Tokens carry no expiry; session liveness is
// the store's concern.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrInvalid is returned for any token that fails verification. Malformed
// structure, undecodable segments and signature mismatch are deliberately
// indistinguishable.
var ErrInvalid = errors.New("token: invalid")

type payload struct {
	UserID   string `json:"user_id"`
	IssuedAt int64  `json:"issued_at"`
}

// Sign issues a bearer token binding userID under the server secret.
// The issuance timestamp has nanosecond precision so consecutive logins
// of the same user always produce distinct tokens.
func Sign(userID string, secret []byte) (string, error) {
	body, err := json.Marshal(payload{UserID: userID, IssuedAt: time.Now().UnixNano()})
	if err != nil {
		return "", err
	}
	encoded := base64.RawURLEncoding.EncodeToString(body)
	sig := computeSignature([]byte(encoded), secret)
	return encoded + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Verify checks the signature under secret and returns the embedded user
// id. It fails closed: any alteration of the token yields ErrInvalid.
func Verify(tok string, secret []byte) (string, error) {
	encoded, sigPart, ok := strings.Cut(tok, ".")
	if !ok || encoded == "" || sigPart == "" {
		return "", ErrInvalid
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return "", ErrInvalid
	}
	if !hmac.Equal(sig, computeSignature([]byte(encoded), secret)) {
		return "", ErrInvalid
	}
	body, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalid
	}
	var p payload
	if err := json.Unmarshal(body, &p); err != nil || p.UserID == "" {
		return "", ErrInvalid
	}
	return p.UserID, nil
}

func computeSignature(msg, secret []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(msg)
	return mac.Sum(nil)
}
