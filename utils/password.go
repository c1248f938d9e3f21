package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters
const (
	saltLength  = 16
	keyLength   = 32
	iterations  = 3
	memoryKiB   = 64 * 1024
	parallelism = 4
)

// HashPassword derives an argon2id hash of the password and returns
// base64(salt || hash).
func HashPassword(plainTextPassword string) string {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		panic(err)
	}
	hash := argon2.IDKey([]byte(plainTextPassword), salt, iterations, memoryKiB, parallelism, keyLength)
	return base64.StdEncoding.EncodeToString(append(salt, hash...))
}

// VerifyPassword re-derives the hash using the stored salt and compares in
// constant time.
func VerifyPassword(plainTextPassword, encoded string) bool {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != saltLength+keyLength {
		return false
	}
	salt, stored := raw[:saltLength], raw[saltLength:]
	hash := argon2.IDKey([]byte(plainTextPassword), salt, iterations, memoryKiB, parallelism, keyLength)
	return subtle.ConstantTimeCompare(hash, stored) == 1
}

// RandKey returns size random bytes, base64-encoded.
func RandKey(size int) string {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}
