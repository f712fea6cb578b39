package permissions_test

import (
	"net/http"
	"safari/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()

	t.Run("public auth endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/auth/login", http.MethodPost)

		assert.True(t, permission.Skip)
	})

	t.Run("admin only endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/users/", http.MethodGet)

		assert.False(t, permission.Skip)
		assert.Equal(t, []string{"admin"}, permission.Permissions)
	})

	t.Run("method mismatch", func(t *testing.T) {
		permission := data.FindPermissions("/v1/auth/login", http.MethodGet)

		assert.Equal(t, permissions.Permission{}, permission)
	})

	t.Run("unlisted endpoint", func(t *testing.T) {
		permission := data.FindPermissions("/v1/reservations/", http.MethodPost)

		assert.False(t, permission.Skip)
		assert.Empty(t, permission.Permissions)
	})
}
