package db

const (
	errRoleNotFound      = "role-not-found"
	errRoleAlreadyExists = "role-already-exists"

	failedToStartTransaction   = "failed-to-start-transaction"
	failedToRetrieveID         = "failed-to-retrieve-id"
	failedToCountRowsAffected  = "failed-to-count-rows-affected"
	failedToCreateRole         = "failed-to-create-role"
	failedToFindRole           = "failed-to-find-role"
	failedToDeleteRole         = "failed-to-delete-role"
	failedToAttachStatement    = "failed-to-attach-statement"
	failedToSerializeStatement = "failed-to-serialize-statement"
	failedToScanStatement      = "failed-to-scan-statement"
	failedToParseStatement     = "failed-to-parse-statement"
	failedToListStatements     = "failed-to-list-statements"
)
