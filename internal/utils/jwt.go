package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sync-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrIncompleteSigner is returned by [TokenSigner.Sign] when the signer lacks
// an issuer, a key or a lifetime.
var ErrIncompleteSigner = errors.New("token signer is missing issuer, key or lifetime")

// TokenSigner issues and verifies HS256 bearer tokens whose subject is the
// owner of the records a request touches.
type TokenSigner struct {
	issuer string
	key    []byte
	ttl    time.Duration
	clock  Clock
}

// NewTokenSigner returns a signer. A nil clock means the system clock.
func NewTokenSigner(issuer, key string, ttl time.Duration, clock Clock) *TokenSigner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TokenSigner{issuer: issuer, key: []byte(key), ttl: ttl, clock: clock}
}

// Sign issues a token for userID carrying iss, sub, iat and exp.
func (s *TokenSigner) Sign(userID string) (models.Token, error) {
	if s.issuer == "" || len(s.key) == 0 || s.ttl == 0 {
		return models.Token{}, ErrIncompleteSigner
	}
	if userID == "" {
		return models.Token{}, errors.New("empty token subject")
	}

	issuedAt := s.clock.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// Verify checks signature, issuer and expiry of raw and returns the token
// with UserID filled from a non-empty subject.
func (s *TokenSigner) Verify(raw string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.key, nil },
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error verifying token: %w", err)
	}

	verified := models.Token{Token: token, RegisteredClaims: claims, SignedString: raw}
	if verified.UserID, err = verified.GetUserID(); err != nil {
		return models.Token{}, err
	}

	return verified, nil
}

// ParseBearerToken returns the credentials of an "Authorization: Bearer x"
// header value. The scheme is case-insensitive.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.ContainsAny(token, " \t") {
		return "", errors.New("invalid authorization header")
	}
	return token, nil
}
