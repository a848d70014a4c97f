// Package auth verifies identity provider bearer tokens and maps them to
// internal user records.
package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

type Verifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

type JWTConfig struct {
	// HMACSecret verifies HS256 tokens. Ignored when RSAPublicKeyPEM is set.
	HMACSecret      string
	RSAPublicKeyPEM string
	Issuer          string
	Audience        string
}

type JWTVerifier struct {
	key     any
	methods []string
	options []jwt.ParserOption
}

type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func NewJWTVerifier(cfg JWTConfig) (*JWTVerifier, error) {
	v := &JWTVerifier{}

	switch {
	case cfg.RSAPublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.RSAPublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("jwt.ParseRSAPublicKeyFromPEM: %w", err)
		}
		v.key = key
		v.methods = []string{jwt.SigningMethodRS256.Alg()}
	case cfg.HMACSecret != "":
		v.key = []byte(cfg.HMACSecret)
		v.methods = []string{jwt.SigningMethodHS256.Alg()}
	default:
		return nil, errors.New("either HMACSecret or RSAPublicKeyPEM is required")
	}

	v.options = []jwt.ParserOption{
		jwt.WithValidMethods(v.methods),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		v.options = append(v.options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		v.options = append(v.options, jwt.WithAudience(cfg.Audience))
	}

	return v, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	var claims identityClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := v.key.(*rsa.PublicKey); ok {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
			}
		}
		return v.key, nil
	}, v.options...)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("jwt.ParseWithClaims: %w: %w", domain.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}

	return domain.Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
