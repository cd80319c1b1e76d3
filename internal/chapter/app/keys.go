package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openchapter/chapter/pkg/cryptox"
	"github.com/openchapter/chapter/pkg/jwtx"
)

// sessionKID identifies the session signing key in token headers. There is a
// single key; rotation means replacing the key file and restarting, which
// invalidates outstanding sessions.
const sessionKID = "session-1"

// initSessionKey loads the Ed25519 session key from disk, generating a fresh
// one on first start so sessions survive restarts.
func initSessionKey(file string) (*jwtx.EdDSASigner, error) {
	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, fmt.Errorf("failed to prepare session key dir: %w", err)
	}

	pemKey, err := os.ReadFile(file)
	if os.IsNotExist(err) {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		if err := os.WriteFile(file, pemKey, 0600); err != nil {
			return nil, fmt.Errorf("failed to persist session key: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read session key: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(sessionKID, pemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session key: %w", err)
	}
	if err := signer.Validate(); err != nil {
		return nil, err
	}

	return signer, nil
}
