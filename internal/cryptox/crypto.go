// Package cryptox implements encryption of stored otpauth URIs at rest.
//
// A master key is derived from the user's password with Argon2id. Each URI is
// sealed with AES-GCM under that key; the random nonce is stored alongside the
// ciphertext. A verifier (SHA-256 of the master key) is persisted so a wrong
// password can be detected without attempting decryption.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltSize is the length of the Argon2 salt in bytes.
	SaltSize = 16

	nonceSize = 12
)

// DeriveMasterKey derives a 32-byte AES key from a password and salt
// using Argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns a value safe to persist that later confirms a derived
// key matches the original one.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// CheckVerifier reports whether the derived key matches the stored verifier.
// The comparison is constant-time.
func CheckVerifier(masterKey []byte, verifier []byte) bool {
	actual := MakeVerifier(masterKey)
	return subtle.ConstantTimeCompare(actual, verifier) == 1
}

// EncryptString seals the plaintext with AES-GCM under key.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A fresh
// random 12-byte nonce is generated per call and returned separately.
func EncryptString(plaintext string, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	return ciphertext, nonce, nil
}

// DecryptString opens a ciphertext produced by EncryptString. The key and
// nonce must be the ones used during encryption.
func DecryptString(ciphertext, nonce, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
