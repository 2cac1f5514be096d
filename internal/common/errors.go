// Package common defines shared constants and sentinel errors used across
// otpkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorAlreadyExists = errors.New("already exists")

	// Vault unlock errors.
	ErrorWrongPassword = errors.New("wrong master password")

	// OTP URI errors.
	ErrorMalformedURI   = errors.New("malformed otpauth uri")
	ErrorUnsupportedOTP = errors.New("unsupported otp type")
)
