package badgerstore

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const envelopeVersion = 1

// ErrWrongPassphrase is returned when the store was sealed with a different passphrase
// or the key material has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted token store")

// kdfParams is persisted once per store so the key can be derived again on reopen.
type kdfParams struct {
	V     int    `json:"v"`
	Salt  []byte `json:"salt"`
	N     int    `json:"scrypt_N"`
	R     int    `json:"scrypt_r"`
	P     int    `json:"scrypt_p"`
	Check []byte `json:"check"`
}

// ScryptParams are the cost parameters for deriving the store key.
type ScryptParams struct {
	N, R, P int
}

// DefaultScryptParams is the interactive-login cost recommended for scrypt.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

var checkPlaintext = []byte("wellbe-token-store")

// sealer encrypts each value with XChaCha20-Poly1305 and a random nonce prefix.
type sealer struct {
	aead cipher.AEAD
}

func newParams(p ScryptParams) (*kdfParams, error) {
	kp := &kdfParams{V: envelopeVersion, Salt: make([]byte, 16), N: p.N, R: p.R, P: p.P}
	if _, err := rand.Read(kp.Salt); err != nil {
		return nil, errors.Wrap(err, "salt")
	}
	return kp, nil
}

func deriveSealer(passphrase string, kp *kdfParams) (*sealer, error) {
	if kp.V > envelopeVersion {
		return nil, fmt.Errorf("unsupported token store version %d", kp.V)
	}
	key, err := scrypt.Key([]byte(passphrase), kp.Salt, kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, errors.Wrap(err, "derive key")
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &sealer{aead: aead}, nil
}

func (s *sealer) seal(plain, ad []byte) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plain)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "nonce")
	}
	return s.aead.Seal(nonce, nonce, plain, ad), nil
}

func (s *sealer) open(sealed, ad []byte) ([]byte, error) {
	if len(sealed) < s.aead.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	nonce, ct := sealed[:s.aead.NonceSize()], sealed[s.aead.NonceSize():]
	pt, err := s.aead.Open(nil, nonce, ct, ad)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func marshalParams(kp *kdfParams) ([]byte, error) { return json.Marshal(kp) }

func unmarshalParams(b []byte) (*kdfParams, error) {
	var kp kdfParams
	if err := json.Unmarshal(b, &kp); err != nil {
		return nil, errors.Wrap(err, "kdf params")
	}
	return &kp, nil
}
