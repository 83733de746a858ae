package auth

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nova-fund/internal/config/configs"
	"nova-fund/internal/core/domain"
)

// Verifier checks call authorization tokens. A token is an EdDSA JWT whose
// subject is the signer's address; the signature must verify against the
// public key the address encodes, so no key registry is needed.
type Verifier struct {
	audience string
	leeway   time.Duration
	maxTTL   time.Duration
	now      func() time.Time
}

// NewVerifier creates a verifier from configuration. now defaults to
// time.Now.
func NewVerifier(cfg configs.Auth, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{audience: cfg.Audience, leeway: cfg.Leeway, maxTTL: cfg.MaxTTL, now: now}
}

// Verify returns the address that signed token.
func (v *Verifier) Verify(token string) (domain.Address, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: empty token", domain.ErrUnauthorized)
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		sub, err := t.Claims.GetSubject()
		if err != nil {
			return nil, err
		}
		return domain.Address(sub).PublicKey()
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if claims.IssuedAt == nil {
		return "", fmt.Errorf("%w: iat is required", domain.ErrUnauthorized)
	}
	if claims.ExpiresAt.Sub(claims.IssuedAt.Time) > v.maxTTL {
		return "", fmt.Errorf("%w: token lifetime exceeds %s", domain.ErrUnauthorized, v.maxTTL)
	}
	addr, err := domain.ParseAddress(claims.Subject)
	if err != nil {
		return "", errors.Join(domain.ErrUnauthorized, err)
	}
	return addr, nil
}

// Sign issues a token authorizing calls as the owner of key for ttl.
func Sign(key ed25519.PrivateKey, audience string, ttl time.Duration, now time.Time) (string, error) {
	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return "", errors.New("unexpected public key type")
	}
	claims := jwt.RegisteredClaims{
		Subject:   domain.AddressFromPublicKey(pub).String(),
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(key)
}
