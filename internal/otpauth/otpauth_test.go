package otpauth

import (
	"testing"

	"github.com/pquerna/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
)

func TestParse_TOTP(t *testing.T) {
	uri := "otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example"

	p, err := Parse(uri)
	require.NoError(t, err)

	assert.Equal(t, TypeTOTP, p.Type)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", p.Secret)
	assert.Equal(t, "Example", p.Issuer)
	assert.Equal(t, "alice@example.com", p.AccountName)
	assert.Equal(t, uint(30), p.Period)
	assert.Equal(t, otp.DigitsSix, p.Digits)
	assert.Equal(t, otp.AlgorithmSHA1, p.Algorithm)
}

func TestParse_TOTP_ExplicitOptions(t *testing.T) {
	uri := "otpauth://totp/Acme:bob?secret=JBSWY3DPEHPK3PXP&issuer=Acme&algorithm=SHA256&digits=8&period=60"

	p, err := Parse(uri)
	require.NoError(t, err)

	assert.Equal(t, uint(60), p.Period)
	assert.Equal(t, otp.DigitsEight, p.Digits)
	assert.Equal(t, otp.AlgorithmSHA256, p.Algorithm)
}

func TestParse_HOTP(t *testing.T) {
	uri := "otpauth://hotp/Example:carol?secret=JBSWY3DPEHPK3PXP&issuer=Example&counter=5"

	p, err := Parse(uri)
	require.NoError(t, err)

	assert.Equal(t, TypeHOTP, p.Type)
	assert.Equal(t, uint64(5), p.Counter)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want error
	}{
		{name: "not a uri", uri: "://nope", want: common.ErrorMalformedURI},
		{name: "wrong scheme", uri: "https://example.com", want: common.ErrorMalformedURI},
		{name: "missing secret", uri: "otpauth://totp/Example:alice?issuer=Example", want: common.ErrorMalformedURI},
		{name: "hotp without counter", uri: "otpauth://hotp/Example:bob?secret=JBSWY3DPEHPK3PXP", want: common.ErrorMalformedURI},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.uri)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
