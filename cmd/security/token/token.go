package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload carried by both token families.
// UserID is the only mandatory claim; registered claims pass through opaquely.
// For refresh tokens, ID (jti) carries the server-side record ID.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies taskhub access and refresh tokens.
type Issuer struct {
	cfg Config
}

// NewIssuer constructs an Issuer, rejecting weak or shared secrets.
func NewIssuer(cfg Config) (*Issuer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Issuer{cfg: cfg}, nil
}

// AccessTTL reports the configured access-token lifetime.
func (i *Issuer) AccessTTL() time.Duration { return i.cfg.AccessTTL }

// RefreshTTL reports the configured refresh-token lifetime.
func (i *Issuer) RefreshTTL() time.Duration { return i.cfg.RefreshTTL }

// IssueAccess signs a short-lived access token for userID.
func (i *Issuer) IssueAccess(userID string, now time.Time) (string, time.Time, error) {
	return i.sign(userID, "", now, i.cfg.AccessTTL, i.cfg.AccessSecret)
}

// IssueRefresh signs a long-lived refresh token for userID.
// tokenID is embedded as the jti claim and matches the stored record.
func (i *Issuer) IssueRefresh(userID, tokenID string, now time.Time) (string, time.Time, error) {
	return i.sign(userID, tokenID, now, i.cfg.RefreshTTL, i.cfg.RefreshSecret)
}

// VerifyAccess verifies an access token.
// Fails with ErrTokenExpired past expiry, ErrTokenInvalid otherwise.
func (i *Issuer) VerifyAccess(tokenString string, now time.Time) (Claims, error) {
	return i.verify(tokenString, now, i.cfg.AccessSecret)
}

// VerifyRefresh verifies a refresh token's signature and expiry.
// The session store remains the authority of record for revocation.
func (i *Issuer) VerifyRefresh(tokenString string, now time.Time) (Claims, error) {
	return i.verify(tokenString, now, i.cfg.RefreshSecret)
}

func (i *Issuer) sign(userID, tokenID string, now time.Time, ttl time.Duration, secret []byte) (string, time.Time, error) {
	exp := now.Add(ttl)

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        tokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, exp, nil
}

func (i *Issuer) verify(tokenString string, now time.Time, secret []byte) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithLeeway(i.cfg.ClockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}

	if !parsed.Valid || claims.UserID == "" {
		return Claims{}, ErrTokenInvalid
	}

	return claims, nil
}
