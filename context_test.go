package taskguard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContextUser tests storing and retrieving the user
func TestContextUser(t *testing.T) {
	user := User{ID: "u1", Email: "a@b.test", Role: RoleAdmin, OrganizationID: "org1"}

	ctx := WithUser(context.Background(), user)
	got, ok := GetUser(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)

	// Empty context has no user
	_, ok = GetUser(context.Background())
	assert.False(t, ok)
}

// TestContextMustGetUser tests the panicking accessor
func TestContextMustGetUser(t *testing.T) {
	user := User{ID: "u1", Role: RoleViewer, OrganizationID: "org1"}
	ctx := WithUser(context.Background(), user)
	assert.Equal(t, user, MustGetUser(ctx))

	assert.Panics(t, func() {
		MustGetUser(context.Background())
	})
}

// TestContextAuditValues tests the audit metadata accessors
func TestContextAuditValues(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetIPAddress(ctx))
	assert.Empty(t, GetUserAgent(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithIPAddress(ctx, "203.0.113.7")
	ctx = WithUserAgent(ctx, "curl/8.0")
	ctx = WithRequestID(ctx, "req-42")

	assert.Equal(t, "203.0.113.7", GetIPAddress(ctx))
	assert.Equal(t, "curl/8.0", GetUserAgent(ctx))
	assert.Equal(t, "req-42", GetRequestID(ctx))
}

// TestContextAuditContext tests the bulk audit helpers
func TestContextAuditContext(t *testing.T) {
	ac := AuditContext{
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
		RequestID: "req-42",
	}

	ctx := WithAuditContext(context.Background(), ac)
	assert.Equal(t, ac, GetAuditContext(ctx))

	// Empty fields are not set
	ctx2 := WithAuditContext(context.Background(), AuditContext{RequestID: "only"})
	got := GetAuditContext(ctx2)
	assert.Equal(t, "only", got.RequestID)
	assert.Empty(t, got.IPAddress)
	assert.Empty(t, got.UserAgent)
}

// TestContextChecker tests storing and retrieving the checker
func TestContextChecker(t *testing.T) {
	user := User{ID: "u1", Role: RoleOwner, OrganizationID: "org1"}
	checker := NewChecker(user)

	ctx := WithChecker(context.Background(), checker)
	assert.Equal(t, checker, GetChecker(ctx))
	assert.Equal(t, checker, FromContext(ctx))

	assert.Nil(t, GetChecker(context.Background()))
	assert.Nil(t, FromContext(context.Background()))
}
