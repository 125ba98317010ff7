package web

import "github.com/junaway/serverless-stack/pkg/permissions"

type CreateRoleRequest struct {
	Name       string                  `json:"name"`
	Statements []permissions.Statement `json:"statements,omitempty"`
}

type RoleResponse struct {
	Name string `json:"name"`
}

// PermissionEntry is the wire form of one permission. Construct shapes
// only exist in code and cannot be sent over the wire.
type PermissionEntry struct {
	Service   string                 `json:"service,omitempty"`
	Statement *permissions.Statement `json:"statement,omitempty"`
}

type AttachPermissionsRequest struct {
	All         bool              `json:"all,omitempty"`
	Permissions []PermissionEntry `json:"permissions,omitempty"`
}

type ListStatementsResponse struct {
	Statements []permissions.Statement `json:"statements"`
}

type HasAccessRequest struct {
	RoleName string `json:"role_name"`
	Action   string `json:"action"`
	Resource string `json:"resource"`
}

type HasAccessResponse struct {
	HasAccess bool `json:"has_access"`
}

type ListAllowedResourcesRequest struct {
	RoleName string `json:"role_name"`
	Action   string `json:"action"`
}

type ListAllowedResourcesResponse struct {
	Resources []string `json:"resources"`
}

func (r AttachPermissionsRequest) permissions() (permissions.Permissions, error) {
	if r.All {
		if len(r.Permissions) != 0 {
			return permissions.Permissions{}, ErrAmbiguousPermission
		}
		return permissions.All(), nil
	}

	var items []permissions.Permission
	for _, entry := range r.Permissions {
		switch {
		case entry.Service != "" && entry.Statement == nil:
			items = append(items, permissions.ServiceAccess(entry.Service))
		case entry.Service == "" && entry.Statement != nil:
			items = append(items, *entry.Statement)
		default:
			return permissions.Permissions{}, ErrAmbiguousPermission
		}
	}

	return permissions.NewPermissions(items...), nil
}
