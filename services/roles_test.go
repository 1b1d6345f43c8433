package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PiotrO9/elearning/models"
)

func TestIsAdminTier(t *testing.T) {
	t.Parallel()

	assert.False(t, IsAdminTier(models.RoleUser))
	assert.True(t, IsAdminTier(models.RoleAdmin))
	assert.True(t, IsAdminTier(models.RoleSuperAdmin))
	assert.False(t, IsAdminTier("MODERATOR"))
	assert.False(t, IsAdminTier(""))
}

func TestIsValidRole(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidRole(models.RoleUser))
	assert.True(t, IsValidRole(models.RoleAdmin))
	assert.True(t, IsValidRole(models.RoleSuperAdmin))
	assert.False(t, IsValidRole("admin"))
	assert.False(t, IsValidRole(""))
}

func TestCanChangeRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requester string
		from      string
		to        string
		want      bool
	}{
		{"admin promotes user", models.RoleAdmin, models.RoleUser, models.RoleAdmin, true},
		{"superadmin promotes user", models.RoleSuperAdmin, models.RoleUser, models.RoleAdmin, true},
		{"superadmin demotes admin", models.RoleSuperAdmin, models.RoleAdmin, models.RoleUser, true},

		{"admin demotes admin", models.RoleAdmin, models.RoleAdmin, models.RoleUser, false},
		{"admin promotes to superadmin", models.RoleAdmin, models.RoleUser, models.RoleSuperAdmin, false},
		{"superadmin promotes to superadmin", models.RoleSuperAdmin, models.RoleUser, models.RoleSuperAdmin, false},
		{"superadmin demotes superadmin", models.RoleSuperAdmin, models.RoleSuperAdmin, models.RoleUser, false},
		{"user promotes user", models.RoleUser, models.RoleUser, models.RoleAdmin, false},
		{"no-op user to user", models.RoleSuperAdmin, models.RoleUser, models.RoleUser, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanChangeRole(tt.requester, tt.from, tt.to))
		})
	}
}
