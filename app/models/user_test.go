package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, (&Utilisateur{IsAdmin: true}).Role())
	assert.Equal(t, RoleDashboardOnly, (&Utilisateur{IsDashboardOnly: true}).Role())
	assert.Equal(t, RoleSpecificChamps, (&Utilisateur{}).Role())

	// The admin flag wins over the dashboard flag.
	assert.Equal(t, RoleAdmin, (&Utilisateur{IsAdmin: true, IsDashboardOnly: true}).Role())
}

func TestCanAccessChamp(t *testing.T) {
	admin := &Utilisateur{IsAdmin: true}
	assert.True(t, admin.CanAccessChamp("06"))

	dashboard := &Utilisateur{IsDashboardOnly: true, AllowedChamps: []string{"06"}}
	assert.False(t, dashboard.CanAccessChamp("06"), "un profil consultation ne modifie aucun champ")

	restreint := &Utilisateur{AllowedChamps: []string{"06", "08"}}
	assert.True(t, restreint.CanAccessChamp("06"))
	assert.True(t, restreint.CanAccessChamp("08"))
	assert.False(t, restreint.CanAccessChamp("13"))

	vide := &Utilisateur{}
	assert.False(t, vide.CanAccessChamp("06"))
}
