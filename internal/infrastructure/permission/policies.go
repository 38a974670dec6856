package permission

import (
	"fmt"

	"quarry/internal/shared/constants"
)

type policyRule struct {
	role     string
	resource string
	action   string
}

// defaultPolicies maps roles to the API surface. Admins can do everything,
// members work with tickets and read project configuration, customers only
// reach the read-only portal.
var defaultPolicies = []policyRule{
	{constants.RoleAdmin, "/api/*", "*"},

	{constants.RoleMember, "/api/tickets", "GET"},
	{constants.RoleMember, "/api/tickets", "POST"},
	{constants.RoleMember, "/api/tickets/:id", "GET"},
	{constants.RoleMember, "/api/tickets/:id", "PUT"},
	{constants.RoleMember, "/api/tickets/:id", "DELETE"},
	{constants.RoleMember, "/api/tickets/:id/status", "PUT"},
	{constants.RoleMember, "/api/tickets/:id/assignees", "PUT"},
	{constants.RoleMember, "/api/tickets/:id/history", "GET"},
	{constants.RoleMember, "/api/tickets/:id/dependencies", "GET"},
	{constants.RoleMember, "/api/tickets/:id/dependencies", "POST"},
	{constants.RoleMember, "/api/tickets/:id/dependencies/:dependency_id", "DELETE"},
	{constants.RoleMember, "/api/projects", "GET"},
	{constants.RoleMember, "/api/projects/:id", "GET"},
	{constants.RoleMember, "/api/projects/:id/statuses", "GET"},
	{constants.RoleMember, "/api/projects/:id/workflow", "GET"},
	{constants.RoleMember, "/api/projects/:id/custom-fields", "GET"},
	{constants.RoleMember, "/api/priorities", "GET"},

	{constants.RoleCustomer, "/portal/*", "GET"},
}

// SeedDefaultPolicies installs the default role policies. Existing rules
// are left untouched, so operator customizations survive reseeding.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, rule := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(rule.role, rule.resource, rule.action); err != nil {
			return fmt.Errorf("failed to seed policy %s %s %s: %w", rule.role, rule.resource, rule.action, err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save seeded policies: %w", err)
	}

	e.logger.Infow("default permission policies seeded", "count", len(defaultPolicies))
	return nil
}
