package token

import (
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FindrHealth/config"
)

func TestGenerateSessionToken(t *testing.T) {
	require.NoError(t, Init())

	tokenString, expiresIn, err := GenerateSessionToken("sess-1", "owner@acmeclinic.com")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Positive(t, expiresIn)

	parsed, err := jwtv5.Parse(tokenString, func(tk *jwtv5.Token) (interface{}, error) {
		return []byte(config.Cfg.JWTSecret), nil
	}, jwtv5.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwtv5.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "sess-1", claims[IdentityKey])
	assert.Equal(t, "owner@acmeclinic.com", claims[EmailKey])
}
