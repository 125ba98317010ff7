package permissions

import "encoding/json"

type Effect string

const (
	Allow Effect = "Allow"
	Deny  Effect = "Deny"
)

const PolicyVersion = "2012-10-17"

// Statement is a single policy statement in the execution role's policy.
type Statement struct {
	Sid       string
	Effect    Effect
	Actions   []string
	Resources []string
}

func (s Statement) Validate() error {
	if s.Effect != Allow && s.Effect != Deny {
		return ErrInvalidStatement
	}
	if len(s.Actions) == 0 {
		return ErrInvalidStatement
	}
	if len(s.Resources) == 0 {
		return ErrInvalidStatement
	}
	return nil
}

func (s Statement) MarshalJSON() ([]byte, error) {
	return json.Marshal(statementJSON{
		Sid:      s.Sid,
		Effect:   string(s.Effect),
		Action:   s.Actions,
		Resource: s.Resources,
	})
}

func (s *Statement) UnmarshalJSON(data []byte) error {
	var sj statementJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}

	s.Sid = sj.Sid
	s.Effect = Effect(sj.Effect)
	s.Actions = sj.Action
	s.Resources = sj.Resource
	return nil
}

type statementJSON struct {
	Sid      string   `json:"Sid,omitempty"`
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource []string `json:"Resource"`
}

// PolicyDocument renders in the wire form expected by the cloud provider's
// policy APIs.
type PolicyDocument struct {
	Version    string      `json:"Version"`
	Statements []Statement `json:"Statement"`
}
