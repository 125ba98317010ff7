package permissions

import "regexp"

// adminActions maps resource-type names to the administrative actions of
// the backing service. Entries are added by request; names not present fall
// back to "<service>:*" when they are well-formed service identifiers.
var adminActions = map[string][]string{
	"api":      {"execute-api:*"},
	"bucket":   {"s3:*"},
	"bus":      {"events:*"},
	"cron":     {"events:*"},
	"function": {"lambda:*"},
	"queue":    {"sqs:*"},
	"stream":   {"kinesis:*"},
	"table":    {"dynamodb:*"},
	"topic":    {"sns:*"},
}

var serviceNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// RegisterService adds or replaces the administrative action list for a
// resource-type name. It is meant to be called at program initialization,
// before any Attach.
func RegisterService(name string, actions ...string) error {
	if !serviceNameRegex.MatchString(name) {
		return ErrInvalidServiceName
	}
	if len(actions) == 0 {
		return ErrInvalidStatement
	}

	registered := make([]string, len(actions))
	copy(registered, actions)
	adminActions[name] = registered

	return nil
}

// AdminActions resolves a resource-type name to its administrative actions.
func AdminActions(name string) ([]string, error) {
	if actions, ok := adminActions[name]; ok {
		result := make([]string, len(actions))
		copy(result, actions)
		return result, nil
	}

	if !serviceNameRegex.MatchString(name) {
		return nil, ErrServiceNotFound
	}

	return []string{name + ":*"}, nil
}
