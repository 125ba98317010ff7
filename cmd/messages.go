package cmd

const (
	starting = "starting"
	finished = "finished"
	success  = "success"

	failedToListen              = "failed-to-listen"
	failedToParseTLSCredentials = "failed-to-parse-tls-credentials"
	failedToOpenSQLConnection   = "failed-to-open-sql-connection"
	failedToApplyMigrations     = "failed-to-apply-migrations"
	failedToRollbackMigrations  = "failed-to-rollback-migrations"

	failedToConnectToStatsD    = "failed-to-connect-to-statsd"
	failedToOpenAuditFile      = "failed-to-open-audit-file"
	failedToDiscoverOIDCIssuer = "failed-to-discover-oidc-issuer"
	failedToCreateOIDCProvider = "failed-to-create-oidc-provider"

	failedToSetupProbe      = "failed-to-setup-probe"
	failedToRunProbe        = "failed-to-run-probe"
	failedToCleanupProbe    = "failed-to-cleanup-probe"
	probeExceededMaxLatency = "probe-exceeded-max-latency"

	failedToReadPermissionsFile  = "failed-to-read-permissions-file"
	failedToParsePermissionsFile = "failed-to-parse-permissions-file"
	failedToResolvePermissions   = "failed-to-resolve-permissions"
	failedToRecordStatements     = "failed-to-record-statements"
)
