package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func TestTokenSigner_SignAndVerify(t *testing.T) {
	clock := &fixedClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	signer := NewTokenSigner("go-sync-keeper", "secret", time.Hour, clock)

	token, err := signer.Sign("device-1")
	require.NoError(t, err)
	assert.Equal(t, "device-1", token.UserID)
	assert.Equal(t, clock.now.Add(time.Hour), token.ExpiresAt.Time)

	verified, err := signer.Verify(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "device-1", verified.UserID)
	assert.Equal(t, "go-sync-keeper", verified.Issuer)
}

func TestTokenSigner_Sign_Incomplete(t *testing.T) {
	tests := []struct {
		name   string
		signer *TokenSigner
	}{
		{"no issuer", NewTokenSigner("", "k", time.Hour, nil)},
		{"no key", NewTokenSigner("iss", "", time.Hour, nil)},
		{"no lifetime", NewTokenSigner("iss", "k", 0, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.signer.Sign("u")
			assert.ErrorIs(t, err, ErrIncompleteSigner)
		})
	}

	_, err := NewTokenSigner("iss", "k", time.Hour, nil).Sign("")
	assert.Error(t, err)
}

func TestTokenSigner_Verify_Rejections(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	signer := NewTokenSigner("iss", "key", time.Minute, clock)
	token, err := signer.Sign("u")
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := NewTokenSigner("iss", "other", time.Minute, clock).Verify(token.SignedString)
		assert.Error(t, err)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		_, err := NewTokenSigner("fake", "key", time.Minute, clock).Verify(token.SignedString)
		assert.Error(t, err)
	})
	t.Run("empty subject", func(t *testing.T) {
		_, err := signer.Verify(noSubject)
		assert.Error(t, err)
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := signer.Verify("not.a.token")
		assert.Error(t, err)
	})
	t.Run("expired", func(t *testing.T) {
		later := NewTokenSigner("iss", "key", time.Minute, &fixedClock{now: clock.now.Add(2 * time.Minute)})
		_, err := later.Verify(token.SignedString)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer tok", want: "tok"},
		{header: "  Bearer tok  ", want: "tok"},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
