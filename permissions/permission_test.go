package permissions_test

import (
	"net/http"
	"testing"

	"pms/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		role   string
		allow  bool
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, allow: true},
		{name: "staff reads rooms", path: "/v1/rooms", method: http.MethodGet, role: "staff", allow: true},
		{name: "staff cannot delete rooms", path: "/v1/rooms/{id}", method: http.MethodDelete, role: "staff"},
		{name: "staff changes room status", path: "/v1/rooms/{id}/status", method: http.MethodPatch, role: "staff", allow: true},
		{name: "manager sees expenses", path: "/v1/expenses/summary", method: http.MethodGet, role: "manager", allow: true},
		{name: "staff cannot see expenses", path: "/v1/expenses", method: http.MethodGet, role: "staff"},
		{name: "only admin manages users", path: "/v1/users", method: http.MethodPost, role: "manager"},
		{name: "any role reads the session", path: "/v1/auth/me", method: http.MethodGet, role: "staff", allow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission, ok := data.FindPermissions(tt.path, tt.method)
			require.True(t, ok)
			assert.Equal(t, tt.allow, permission.Allows(tt.role))
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/a","method":"GET","permissions":["admin"]}]}`))
	require.NoError(t, err)

	_, ok := data.FindPermissions("/v1/b", http.MethodGet)
	assert.False(t, ok)

	permission, ok := data.FindPermissions("/v1/a", "get")
	require.True(t, ok)
	assert.True(t, permission.Allows("admin"))
	assert.False(t, permission.Allows("staff"))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: `{`},
		{name: "duplicate route", data: `{"endpoints":[{"path":"/v1/a","method":"GET"},{"path":"/v1/a","method":"get"}]}`},
		{name: "unknown role", data: `{"endpoints":[{"path":"/v1/a","method":"GET","permissions":["owner"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := permissions.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
