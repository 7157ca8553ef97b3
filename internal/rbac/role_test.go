package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	tests := []struct {
		name  string
		role  Role
		valid bool
	}{
		{"admin", RoleAdmin, true},
		{"plant manager", RolePlantManager, true},
		{"production manager", RoleProductionManager, true},
		{"accountant", RoleAccountant, true},
		{"none sentinel is not a role", Role(RoleNone), false},
		{"empty", Role(""), false},
		{"unknown", Role("superadmin"), false},
		{"case sensitive", Role("Admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.Valid())
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("accountant")
	assert.True(t, ok)
	assert.Equal(t, RoleAccountant, r)

	_, ok = ParseRole("manager")
	assert.False(t, ok)
}

func TestRoleList(t *testing.T) {
	assert.Equal(t, "admin, plantManager, productionManager, accountant", RoleList())
}
