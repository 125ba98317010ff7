package permissions

//go:generate counterfeiter . Grantable

// Grantable is implemented by constructs that hand out their conventional
// full-access grant.
type Grantable interface {
	GrantFullAccess(role *ExecutionRole) error
}

//go:generate counterfeiter . GrantDispatcher

// GrantDispatcher is implemented by constructs that expose named grant
// methods selectable at configuration time, e.g. "grantPublish" on a topic.
// Implementations return ErrGrantNotFound for names they do not recognize.
type GrantDispatcher interface {
	Grant(method string, role *ExecutionRole) error
}
