// Package permsfile loads permission specifications declared in YAML.
//
// A file lists either the wildcard sentinel or the on-disk permission
// shapes; construct references only exist in code and cannot be named in a
// file.
//
//	permissions:
//	  - service: bucket
//	  - service: ses
//	  - statement:
//	      effect: Allow
//	      actions: [s3:GetObject]
//	      resources: ["arn:aws:s3:::data/*"]
package permsfile

import (
	"errors"

	yaml "gopkg.in/yaml.v2"

	"github.com/junaway/serverless-stack/pkg/permissions"
)

var (
	ErrEmptySpecification = errors.New("permsfile: specification lists no permissions")
	ErrAmbiguousEntry     = errors.New("permsfile: entry must set exactly one of service and statement")
	ErrAllWithEntries     = errors.New("permsfile: all cannot be combined with a permission list")
)

type document struct {
	All         bool    `yaml:"all"`
	Permissions []entry `yaml:"permissions"`
}

type entry struct {
	Service   string     `yaml:"service"`
	Statement *statement `yaml:"statement"`
}

type statement struct {
	Sid       string   `yaml:"sid"`
	Effect    string   `yaml:"effect"`
	Actions   []string `yaml:"actions"`
	Resources []string `yaml:"resources"`
}

// Parse decodes a YAML permission specification.
func Parse(contents []byte) (permissions.Permissions, error) {
	var doc document
	if err := yaml.UnmarshalStrict(contents, &doc); err != nil {
		return permissions.Permissions{}, err
	}

	if doc.All {
		if len(doc.Permissions) != 0 {
			return permissions.Permissions{}, ErrAllWithEntries
		}
		return permissions.All(), nil
	}

	if len(doc.Permissions) == 0 {
		return permissions.Permissions{}, ErrEmptySpecification
	}

	var items []permissions.Permission
	for _, e := range doc.Permissions {
		switch {
		case e.Service != "" && e.Statement == nil:
			items = append(items, permissions.ServiceAccess(e.Service))
		case e.Service == "" && e.Statement != nil:
			s := permissions.Statement{
				Sid:       e.Statement.Sid,
				Effect:    permissions.Effect(e.Statement.Effect),
				Actions:   e.Statement.Actions,
				Resources: e.Statement.Resources,
			}
			if err := s.Validate(); err != nil {
				return permissions.Permissions{}, err
			}
			items = append(items, s)
		default:
			return permissions.Permissions{}, ErrAmbiguousEntry
		}
	}

	return permissions.NewPermissions(items...), nil
}
