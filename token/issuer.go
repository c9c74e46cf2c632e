package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/users"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

const issuerName = "wellbe"

// Claims carried by a wellbe access token.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies access tokens.
type Issuer struct {
	signer  Signer
	expiry  time.Duration
	revoked RevokedTokenCache
}

func NewIssuer(signer Signer, expiry time.Duration, revoked RevokedTokenCache) (*Issuer, error) {
	if signer == nil {
		return nil, fmt.Errorf("[NewIssuer] signer is required")
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("[NewIssuer] expiry must be positive")
	}
	if revoked == nil {
		revoked = NewInMemoryRevokedTokenCache()
	}
	return &Issuer{signer: signer, expiry: expiry, revoked: revoked}, nil
}

// Issue creates an access token for user.
func (i *Issuer) Issue(user *users.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("[Issuer.Issue] user is required")
	}
	now := NowTimeFunc()
	claims := Claims{
		Email: user.Email,
		Name:  user.FullName(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
			ID:        uuid.New().String(), // Unique token ID for revocation
		},
	}
	return i.signer.Sign(claims)
}

// Verify checks the signature, expiry and revocation state of raw.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, wellbeerrors.ErrInvalidToken
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, i.signer.GetVerificationKey,
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(NowTimeFunc),
		jwt.WithValidMethods([]string{i.signer.GetSigningMethod().Alg()}),
	)
	if err != nil || !tok.Valid {
		return nil, wellbeerrors.Wrapf(wellbeerrors.ErrInvalidToken, "%v", err)
	}
	if i.revoked.IsRevoked(claims.ID) {
		return nil, wellbeerrors.Wrapf(wellbeerrors.ErrInvalidToken, "token revoked")
	}
	return claims, nil
}

// Revoke marks an access token as no longer valid until it would have expired.
// Entries for tokens that have since expired are dropped on the way.
func (i *Issuer) Revoke(claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return nil
	}
	exp := NowTimeFunc().Add(i.expiry)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	i.revoked.Prune()
	return i.revoked.Add(claims.ID, exp)
}
