package monitor

const (
	starting = "starting"
	finished = "finished"

	incorrectResponse = "incorrect-response"

	failedToRecordHistogramValue = "failed-to-record-histogram-value"
	failedToSendMetric           = "failed-to-send-metric"

	failedToCreateRole = "failed-to-create-role"
	failedToDeleteRole = "failed-to-delete-role"

	failedToCheckAccess = "failed-to-check-access"
)
