package monitor

type ExceededMaxLatencyError struct{}

func (e ExceededMaxLatencyError) Error() string {
	return "probe: an API call timed out"
}

type HasAttachedAccessError struct{}

func (e HasAttachedAccessError) Error() string {
	return "probe: incorrect result, HasAccess should have returned true"
}

type HasUnattachedAccessError struct{}

func (e HasUnattachedAccessError) Error() string {
	return "probe: incorrect result, HasAccess should have returned false"
}
