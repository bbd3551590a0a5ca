package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse")
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse", hash)

	assert.True(t, CheckPasswordHash("motdepasse", hash))
	assert.False(t, CheckPasswordHash("autre", hash))
	assert.False(t, CheckPasswordHash("motdepasse", "pas-un-hash"))
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.Utilisateur{
		ID:            "7f9c34c5-8a6d-4f9e-9d24-1d9a3f1f2b10",
		Username:      "direction",
		AllowedChamps: []string{"06", "08"},
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "direction", claims.Username)
	assert.Equal(t, string(models.RoleSpecificChamps), claims.Role)
	assert.Equal(t, []string{"06", "08"}, claims.AllowedChamps)
	assert.Equal(t, "gestion-administrative", claims.Issuer)
}

func TestValidateJWTRejetteLesJetonsAlteres(t *testing.T) {
	user := &models.Utilisateur{ID: "u1", Username: "x", IsAdmin: true}
	token, err := GenerateJWT(user)
	require.NoError(t, err)

	_, err = ValidateJWT(token + "a")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}
