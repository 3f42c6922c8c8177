package services

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// LoginCodeLength is the fixed length of a login code.
const LoginCodeLength = 21

const loginCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

// generateLoginCode draws LoginCodeLength symbols from the 64-symbol URL-safe
// alphabet. 64 divides 256, so masking a random byte keeps the draw uniform.
func generateLoginCode() (string, error) {
	buf := make([]byte, LoginCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = loginCodeAlphabet[b&63]
	}
	return string(buf), nil
}

// ValidLoginCode reports whether code has the shape of a login code.
func ValidLoginCode(code string) bool {
	if len(code) != LoginCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

// generateSessionSecret returns 32 random bytes, base64url encoded.
func generateSessionSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// digest is the stored form of login codes and session secrets.
func digest(secret string) string {
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
