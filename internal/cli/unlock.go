package cli

import (
	"context"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/cryptox"
	"github.com/dmitrijs2005/otpkeeper/internal/repositories/metadata"
)

// UnlockVault derives the master key from the password and the stored salt.
//
// On first run (no salt yet) it initializes the vault: a fresh salt and a
// verifier for the derived key are persisted, and the key is returned. On
// later runs the derived key is checked against the stored verifier;
// a mismatch yields common.ErrorWrongPassword.
func UnlockVault(ctx context.Context, meta metadata.Repository, password []byte) ([]byte, error) {
	salt, err := meta.Get(ctx, metadata.KeySalt)
	if err != nil {
		return nil, err
	}

	if salt == nil {
		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		key := cryptox.DeriveMasterKey(password, salt)

		if err := meta.Set(ctx, metadata.KeySalt, salt); err != nil {
			return nil, err
		}
		if err := meta.Set(ctx, metadata.KeyVerifier, cryptox.MakeVerifier(key)); err != nil {
			return nil, err
		}
		return key, nil
	}

	verifier, err := meta.Get(ctx, metadata.KeyVerifier)
	if err != nil {
		return nil, err
	}

	key := cryptox.DeriveMasterKey(password, salt)
	if verifier == nil || !cryptox.CheckVerifier(key, verifier) {
		return nil, common.ErrorWrongPassword
	}

	return key, nil
}
