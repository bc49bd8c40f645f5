package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("u1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "cinecircle", claims.Issuer)
}

func TestValidToken_Garbage(t *testing.T) {
	_, err := ValidToken("not.a.token")
	require.Error(t, err)

	_, err = ValidToken("")
	require.Error(t, err)
}

func TestValidToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken("u1", "alice")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidToken(tampered)
	require.Error(t, err)
}
