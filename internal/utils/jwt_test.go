package utils

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("rhymebook", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "rhymebook", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   int64
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", issuer: "", userID: 1, duration: time.Hour, key: "k"},
		{name: "zero duration", issuer: "i", userID: 1, duration: 0, key: "k"},
		{name: "empty key", issuer: "i", userID: 1, duration: time.Hour, key: ""},
		{name: "no user", issuer: "i", userID: 0, duration: time.Hour, key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("rhymebook", 42, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "rhymebook")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("rhymebook", 42, time.Hour, "secret")
	require.NoError(t, err)

	now := time.Now()
	expired := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "rhymebook",
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	}, []byte("secret"))
	noExpiry := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "rhymebook",
		Subject: "42",
	}, []byte("secret"))
	badSubject := signClaims(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "rhymebook",
		Subject:   "susan",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}, []byte("secret"))
	otherAlg := signClaims(t, jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "rhymebook",
		Subject:   strconv.Itoa(42),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}, []byte("secret"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "rhymebook"},
		{name: "wrong issuer", token: valid.SignedString, key: "secret", issuer: "someone-else"},
		{name: "expired", token: expired, key: "secret", issuer: "rhymebook"},
		{name: "no expiry", token: noExpiry, key: "secret", issuer: "rhymebook"},
		{name: "non numeric subject", token: badSubject, key: "secret", issuer: "rhymebook"},
		{name: "unexpected algorithm", token: otherAlg, key: "secret", issuer: "rhymebook"},
		{name: "malformed", token: "not.a.jwt", key: "secret", issuer: "rhymebook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}
