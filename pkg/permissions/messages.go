package permissions

const (
	starting = "starting"
	success  = "success"

	errServiceNotFound       = "service-not-found"
	errInvalidStatement      = "invalid-statement"
	failedToGrantFullAccess  = "failed-to-grant-full-access"
	failedToDispatchGrant    = "failed-to-dispatch-grant"
	errUnknownPermissionType = "unknown-permission-type"
)
