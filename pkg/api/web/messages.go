package web

const (
	starting = "starting"
	success  = "success"

	internal = "internal"

	failedToDecodeRequest  = "failed-to-decode-request"
	failedToEncodeResponse = "failed-to-encode-response"
)
