package repos

import (
	"strings"

	"github.com/junaway/serverless-stack/pkg/permissions"
)

// Allows evaluates recorded statements against an (action, resource) pair.
// Any matching Deny wins over any matching Allow.
func Allows(statements []permissions.Statement, action, resource string) bool {
	var allowed bool

	for _, statement := range statements {
		if !matchesAny(statement.Actions, action) {
			continue
		}
		if !matchesAny(statement.Resources, resource) {
			continue
		}

		if statement.Effect == permissions.Deny {
			return false
		}
		allowed = true
	}

	return allowed
}

// AllowedResources collects the resource patterns of Allow statements whose
// action list matches the given action.
func AllowedResources(statements []permissions.Statement, action string) []string {
	var (
		patterns []string
		seen     = make(map[string]struct{})
	)

	for _, statement := range statements {
		if statement.Effect != permissions.Allow {
			continue
		}
		if !matchesAny(statement.Actions, action) {
			continue
		}

		for _, resource := range statement.Resources {
			if _, ok := seen[resource]; ok {
				continue
			}
			seen[resource] = struct{}{}
			patterns = append(patterns, resource)
		}
	}

	return patterns
}

func matchesAny(patterns []string, value string) bool {
	for _, pattern := range patterns {
		if matches(pattern, value) {
			return true
		}
	}
	return false
}

// matches supports the single trailing-wildcard form used by policy
// statements: "*", "s3:*", "arn:aws:s3:::data/*".
func matches(pattern, value string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(value, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == value
}
