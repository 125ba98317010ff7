package inmemory

const (
	success = "success"

	errRoleNotFound      = "role-not-found"
	errRoleAlreadyExists = "role-already-exists"
)
