// Package otpauth parses otpauth:// URIs into structured OTP parameters.
//
// The heavy lifting is delegated to github.com/pquerna/otp; this package adds
// validation and maps the result onto an immutable Params value the rest of
// the application works with.
package otpauth

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pquerna/otp"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
)

// Type identifies the OTP flavour encoded in a URI.
type Type string

const (
	TypeTOTP Type = "totp"
	TypeHOTP Type = "hotp"
)

// Params holds the parameters parsed from one otpauth URI.
// A Params value is immutable once parsed and is owned by exactly one entry.
type Params struct {
	Type        Type
	Secret      string // base32, as stored in the URI
	Algorithm   otp.Algorithm
	Digits      otp.Digits
	Period      uint   // seconds, totp only
	Counter     uint64 // hotp only
	Issuer      string
	AccountName string
}

// Parse parses and validates an otpauth:// URI.
//
// Errors wrap common.ErrorMalformedURI for syntactically invalid URIs and
// common.ErrorUnsupportedOTP for valid URIs of a type we cannot generate.
func Parse(uri string) (Params, error) {
	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", common.ErrorMalformedURI, err)
	}

	if key.Secret() == "" {
		return Params{}, fmt.Errorf("%w: missing secret", common.ErrorMalformedURI)
	}

	p := Params{
		Secret:      key.Secret(),
		Algorithm:   key.Algorithm(),
		Digits:      key.Digits(),
		Issuer:      key.Issuer(),
		AccountName: key.AccountName(),
	}

	switch Type(key.Type()) {
	case TypeTOTP:
		p.Type = TypeTOTP
		p.Period = uint(key.Period())
	case TypeHOTP:
		p.Type = TypeHOTP
		counter, err := hotpCounter(uri)
		if err != nil {
			return Params{}, err
		}
		p.Counter = counter
	default:
		return Params{}, fmt.Errorf("%w: %q", common.ErrorUnsupportedOTP, key.Type())
	}

	return p, nil
}

// hotpCounter extracts the mandatory counter parameter of a hotp URI.
func hotpCounter(uri string) (uint64, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorMalformedURI, err)
	}

	raw := u.Query().Get("counter")
	if raw == "" {
		return 0, fmt.Errorf("%w: hotp uri without counter", common.ErrorMalformedURI)
	}

	counter, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad counter %q", common.ErrorMalformedURI, raw)
	}

	return counter, nil
}
