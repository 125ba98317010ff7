package main

const (
	starting = "starting"
	finished = "finished"

	failedToConnectToStatsD   = "failed-to-connect-to-statsd"
	failedToReadCACertificate = "failed-to-read-ca-certificate"
	failedToCreateCertPool    = "failed-to-create-cert-pool"
	failedToDialRegistry      = "failed-to-dial-registry"
)
