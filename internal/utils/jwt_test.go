package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/resourcekit/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "resourcekit-test"
	testKey    = "secret-key"
)

func testClaims() models.UserClaims {
	return models.NewUserClaims(models.User{ID: "0190d5f6-0000-7000-8000-000000000001", Name: "Ann", Email: "ann@example.com"}, models.PurposeAccess)
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	now := time.Now()

	signed, err := GenerateJWTToken(testClaims(), testIssuer, time.Hour, testKey, now)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ParseJWTToken(signed, testKey, testIssuer, time.Now, false)
	require.NoError(t, err)

	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "0190d5f6-0000-7000-8000-000000000001", claims.Subject)
	assert.Equal(t, claims.Subject, claims.UserID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, models.PurposeAccess, claims.Purpose)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestGenerateJWTToken_DistinctTokens(t *testing.T) {
	now := time.Now()

	first, err := GenerateJWTToken(testClaims(), testIssuer, time.Hour, testKey, now)
	require.NoError(t, err)
	second, err := GenerateJWTToken(testClaims(), testIssuer, time.Hour, testKey, now)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, key: testKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, key: testKey},
		{name: "negative duration", issuer: testIssuer, duration: -time.Minute, key: testKey},
		{name: "empty key", issuer: testIssuer, duration: time.Hour, key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(testClaims(), tt.issuer, tt.duration, tt.key, time.Now())
			assert.True(t, errors.Is(err, ErrInvalidJWTParams))
		})
	}
}

func TestParseJWTToken_Failures(t *testing.T) {
	now := time.Now()
	valid, err := GenerateJWTToken(testClaims(), testIssuer, time.Hour, testKey, now)
	require.NoError(t, err)
	expired, err := GenerateJWTToken(testClaims(), testIssuer, time.Minute, testKey, now.Add(-time.Hour))
	require.NoError(t, err)
	noSubject, err := GenerateJWTToken(models.UserClaims{}, testIssuer, time.Hour, testKey, now)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid, key: "other", issuer: testIssuer},
		{name: "wrong issuer", token: valid, key: testKey, issuer: "someone-else"},
		{name: "expired", token: expired, key: testKey, issuer: testIssuer},
		{name: "garbage", token: "not-a-jwt", key: testKey, issuer: testIssuer},
		{name: "no subject", token: noSubject, key: testKey, issuer: testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJWTToken(tt.token, tt.key, tt.issuer, time.Now, false)
			assert.Error(t, err)
		})
	}
}

func TestParseJWTToken_IgnoreExpiration(t *testing.T) {
	expired, err := GenerateJWTToken(testClaims(), testIssuer, time.Minute, testKey, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	claims, err := ParseJWTToken(expired, testKey, testIssuer, time.Now, true)
	require.NoError(t, err)
	assert.Equal(t, "Ann", claims.Name)

	_, err = ParseJWTToken(expired, "other", testIssuer, time.Now, true)
	assert.Error(t, err)

	_, err = ParseJWTToken(expired, testKey, "someone-else", time.Now, true)
	assert.True(t, errors.Is(err, jwt.ErrTokenInvalidIssuer))
}

func TestParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, testClaims())
	signed, err := token.SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = ParseJWTToken(signed, testKey, testIssuer, time.Now, true)
	assert.Error(t, err)
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()

	assert.True(t, IsValidUUID(a))
	assert.NotEqual(t, a, b)
	assert.False(t, IsValidUUID("nope"))
}
