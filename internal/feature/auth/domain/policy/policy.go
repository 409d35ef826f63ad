// Package policy holds the static access policy: which roles imply which,
// and which route prefixes require which role. The user repository only
// supplies the stored role string; all expansion happens here.
package policy

import (
	"strings"

	"cms_backend/internal/feature/users/domain/entity"
)

// roleHierarchy maps a role to the roles it implies.
// Admins inherit everything a regular user may do.
var roleHierarchy = map[string][]string{
	entity.RoleAdmin: {entity.RoleUser},
}

// RoleForComments is the role required to post a comment. Admins satisfy
// it through the hierarchy.
const RoleForComments = entity.RoleUser

// AccessRule gates a route prefix behind a required role.
type AccessRule struct {
	Prefix string
	Role   string
}

// accessRules is evaluated first-match-wins against the request path.
var accessRules = []AccessRule{
	{Prefix: "/admin", Role: entity.RoleAdmin},
}

// Expand returns the role itself plus every role it implies. An
// unrecognized label expands to just itself: it grants no extra
// capabilities but does not corrupt evaluation either.
func Expand(role string) []string {
	granted := []string{role}
	granted = append(granted, roleHierarchy[role]...)
	return granted
}

// HasRole reports whether the granted role satisfies the required one,
// taking the hierarchy into account.
func HasRole(granted, required string) bool {
	for _, r := range Expand(granted) {
		if r == required {
			return true
		}
	}
	return false
}

// RequiredRole returns the role gating the given request path, if any.
func RequiredRole(path string) (string, bool) {
	for _, rule := range accessRules {
		if strings.HasPrefix(path, rule.Prefix) {
			return rule.Role, true
		}
	}
	return "", false
}
