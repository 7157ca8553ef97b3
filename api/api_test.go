package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ContractIsValid(t *testing.T) {
	doc, err := Load()
	require.NoError(t, err)

	// The self-authenticating role-update path must be present with both
	// the POST operation and the CORS preflight.
	item := doc.Paths.Find("/api/v1/admin/update-user-role")
	require.NotNil(t, item)
	require.NotNil(t, item.Post)
	require.NotNil(t, item.Options)

	// Its request body must not require any fields: presence checks are
	// part of the endpoint's ordered validation.
	body := item.Post.RequestBody
	require.NotNil(t, body)
	assert.False(t, body.Value.Required)
	schema := body.Value.Content.Get("application/json").Schema.Value
	assert.Empty(t, schema.Required)

	for _, path := range []string{
		"/healthz",
		"/readyz",
		"/api/v1/auth/login",
		"/api/v1/auth/me",
		"/api/v1/admin/users",
		"/api/v1/admin/audit-logs",
		"/api/v1/leave-requests",
		"/api/v1/admin/leave-requests/{id}/decision",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
