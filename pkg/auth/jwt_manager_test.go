package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	mgr := NewJWTManager("test-secret", time.Hour)
	userID := uuid.New().String()

	token, err := mgr.Generate(userID)
	require.NoError(t, err)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "spyroom", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).Generate("user")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute)

	token, err := mgr.Generate("user")
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := ExtractTokenFromHeader(req)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	req.Header.Set("Authorization", "abc.def.ghi")
	_, err = ExtractTokenFromHeader(req)
	assert.Error(t, err)
}
