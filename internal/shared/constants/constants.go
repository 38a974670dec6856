// Package constants defines shared constant values used across layers.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Gin context keys set by middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Role names used by the authorization layer and policy seeds.
const (
	RoleAdmin    = "admin"
	RoleMember   = "member"
	RoleCustomer = "customer"
)
