package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort/permissions"
)

func TestGet(t *testing.T) {
	table := permissions.Get()

	require.NotNil(t, table)
	assert.True(t, table.Enforce)
	assert.NotEmpty(t, table.Rules)
}

func TestTable_Find(t *testing.T) {
	table := permissions.Get()
	require.NotNil(t, table)

	tests := []struct {
		name       string
		method     string
		path       string
		wantFound  bool
		wantPublic bool
		wantRoles  []string
	}{
		{name: "public booking submission", method: "POST", path: "/v1/bookings/", wantFound: true, wantPublic: true},
		{name: "trailing slash is ignored", method: "post", path: "/v1/bookings", wantFound: true, wantPublic: true},
		{name: "booking list is back-office only", method: "GET", path: "/v1/bookings/", wantFound: true, wantRoles: []string{"admin", "staff"}},
		{name: "package catalog is public", method: "GET", path: "/v1/packages/{id}", wantFound: true, wantPublic: true},
		{name: "registering staff needs an admin", method: "POST", path: "/v1/auth/register", wantFound: true, wantRoles: []string{"admin"}},
		{name: "material orders are admin only", method: "PATCH", path: "/v1/material-orders/{id}", wantFound: true, wantRoles: []string{"admin"}},
		{name: "financial summary is admin only", method: "GET", path: "/v1/finance/summary", wantFound: true, wantRoles: []string{"admin"}},
		{name: "unknown endpoint", method: "GET", path: "/v1/unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, found := table.Find(tt.method, tt.path)

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantPublic, rule.Public)
			assert.Equal(t, tt.wantRoles, rule.Roles)
		})
	}
}

func TestRule_Allows(t *testing.T) {
	adminOnly := permissions.Rule{Roles: []string{"admin"}}

	assert.True(t, adminOnly.Allows("admin"))
	assert.False(t, adminOnly.Allows("staff"))
	assert.False(t, adminOnly.Allows(""))
	assert.True(t, permissions.Rule{Public: true}.Allows(""))
	assert.True(t, permissions.Rule{}.Allows("staff"))
}

func TestParse_RejectsDuplicates(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"rules":[{"method":"GET","path":"/v1/a"},{"method":"get","path":"/v1/a/"}]}`))

	assert.ErrorContains(t, err, "duplicate permission rule for GET /v1/a")
}

func TestParse_RejectsMalformed(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"rules":`))

	assert.Error(t, err)
}
