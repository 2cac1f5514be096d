// Package otpgen produces one-time password codes for parsed otpauth
// parameters. Code generation is delegated to github.com/pquerna/otp.
package otpgen

import (
	"fmt"
	"time"

	"github.com/pquerna/otp/hotp"
	"github.com/pquerna/otp/totp"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/otpauth"
)

// Generator produces the current code for one entry. Implementations are
// pure given wall-clock time and carry no externally visible mutable state.
type Generator interface {
	// Generate returns the code for the current wall-clock time.
	Generate() (string, error)

	// GenerateAt returns the code for a specific point in time.
	// Intended for deterministic tests.
	GenerateAt(t time.Time) (string, error)
}

// New returns a Generator bound to the given parameters.
func New(p otpauth.Params) (Generator, error) {
	switch p.Type {
	case otpauth.TypeTOTP:
		return &totpGenerator{params: p}, nil
	case otpauth.TypeHOTP:
		return &hotpGenerator{params: p}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnsupportedOTP, p.Type)
	}
}

type totpGenerator struct {
	params otpauth.Params
}

func (g *totpGenerator) Generate() (string, error) {
	return g.GenerateAt(time.Now())
}

func (g *totpGenerator) GenerateAt(t time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(g.params.Secret, t, totp.ValidateOpts{
		Period:    g.params.Period,
		Digits:    g.params.Digits,
		Algorithm: g.params.Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("totp generate: %w", err)
	}
	return code, nil
}

// hotpGenerator produces the code for the counter recorded in the source URI.
// The counter is not advanced here: incrementing is an account-level action
// that must go through the source store, not through display refresh.
type hotpGenerator struct {
	params otpauth.Params
}

func (g *hotpGenerator) Generate() (string, error) {
	return g.GenerateAt(time.Now())
}

func (g *hotpGenerator) GenerateAt(_ time.Time) (string, error) {
	code, err := hotp.GenerateCodeCustom(g.params.Secret, g.params.Counter, hotp.ValidateOpts{
		Digits:    g.params.Digits,
		Algorithm: g.params.Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("hotp generate: %w", err)
	}
	return code, nil
}
