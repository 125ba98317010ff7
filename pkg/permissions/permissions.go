// Package permissions implements the permission specification attached to a
// compute unit's execution role: a sentinel for wildcard administrative
// access, or an ordered list of service names, construct references,
// (construct, grant method) pairs, and raw policy statements.
package permissions

// Permission is one element of a permission specification. The concrete
// shapes are ServiceAccess, ConstructAccess, MethodAccess, and Statement.
type Permission interface {
	permission()
}

// ServiceAccess names a resource type ("bucket", "table") or a plain
// service identifier ("s3"); it resolves to that service's administrative
// actions through the service table.
type ServiceAccess string

func (ServiceAccess) permission() {}

// ConstructAccess references a construct whose conventional full-access
// grant should be invoked.
type ConstructAccess struct {
	Construct Grantable
}

func (ConstructAccess) permission() {}

// MethodAccess references a construct together with the name of one of its
// grant methods.
type MethodAccess struct {
	Construct GrantDispatcher
	Method    string
}

func (MethodAccess) permission() {}

func (Statement) permission() {}

// Permissions is the full specification value: either the wildcard
// sentinel or an ordered list of Permission elements.
type Permissions struct {
	all   bool
	items []Permission
}

// All grants wildcard administrative access to the execution role.
func All() Permissions {
	return Permissions{all: true}
}

func NewPermissions(items ...Permission) Permissions {
	return Permissions{items: items}
}

func (p Permissions) IsAll() bool {
	return p.all
}

func (p Permissions) Items() []Permission {
	items := make([]Permission, len(p.items))
	copy(items, p.items)
	return items
}
