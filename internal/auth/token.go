package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shivanand-hulikatti/event-management/internal/apperror"
)

// Claims is the caller identity asserted by a verified token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// TokenConfig holds JWT signing settings read from the environment.
type TokenConfig struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int
}

// TokenConfigFromEnv reads JWT settings from well-known environment
// variables, falling back to local-development defaults for everything but
// the secret.
func TokenConfigFromEnv() (TokenConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return TokenConfig{}, fmt.Errorf("JWT_SECRET is not configured")
	}
	hours := 24
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return TokenConfig{
		Secret:          secret,
		Issuer:          getEnv("JWT_ISSUER", "event-management"),
		Audience:        getEnv("JWT_AUDIENCE", "event-management"),
		ExpirationHours: hours,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TokenIssuer signs and verifies HS256 tokens carrying identity claims.
type TokenIssuer struct {
	cfg TokenConfig
}

// NewTokenIssuer constructs a TokenIssuer.
func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given identity.
func (t *TokenIssuer) Issue(userID, email string, role Role) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.cfg.Issuer,
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(t.cfg.ExpirationHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token and extracts the identity claims. Any failure —
// bad signature, expiry, wrong issuer or audience, missing subject — is an
// authorization error.
func (t *TokenIssuer) Parse(tokenString string) (Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
			}
			return []byte(t.cfg.Secret), nil
		},
		jwt.WithIssuer(t.cfg.Issuer),
		jwt.WithAudience(t.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, apperror.Unauthorized("invalid token")
	}
	if claims.Subject == "" {
		return Claims{}, apperror.Unauthorized("token has no subject")
	}
	return Claims{UserID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}
