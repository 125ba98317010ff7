package repos_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

var _ = Describe("Allows", func() {
	statement := func(effect permissions.Effect, actions, resources []string) permissions.Statement {
		return permissions.Statement{
			Effect:    effect,
			Actions:   actions,
			Resources: resources,
		}
	}

	It("matches exact actions", func() {
		statements := []permissions.Statement{
			statement(permissions.Allow, []string{"s3:GetObject"}, []string{"*"}),
		}

		Expect(repos.Allows(statements, "s3:GetObject", "anything")).To(BeTrue())
		Expect(repos.Allows(statements, "s3:PutObject", "anything")).To(BeFalse())
	})

	It("matches service wildcard actions", func() {
		statements := []permissions.Statement{
			statement(permissions.Allow, []string{"s3:*"}, []string{"*"}),
		}

		Expect(repos.Allows(statements, "s3:GetObject", "anything")).To(BeTrue())
		Expect(repos.Allows(statements, "sns:Publish", "anything")).To(BeFalse())
	})

	It("matches the global wildcard", func() {
		statements := []permissions.Statement{permissions.WildcardStatement}

		Expect(repos.Allows(statements, "iam:PassRole", "any-resource")).To(BeTrue())
	})

	It("matches resource prefixes ending in a wildcard", func() {
		statements := []permissions.Statement{
			statement(permissions.Allow, []string{"s3:GetObject"}, []string{"arn:aws:s3:::data/*"}),
		}

		Expect(repos.Allows(statements, "s3:GetObject", "arn:aws:s3:::data/reports.csv")).To(BeTrue())
		Expect(repos.Allows(statements, "s3:GetObject", "arn:aws:s3:::other/reports.csv")).To(BeFalse())
	})

	It("lets Deny win regardless of statement order", func() {
		statements := []permissions.Statement{
			statement(permissions.Deny, []string{"s3:DeleteObject"}, []string{"*"}),
			statement(permissions.Allow, []string{"s3:*"}, []string{"*"}),
		}

		Expect(repos.Allows(statements, "s3:DeleteObject", "anything")).To(BeFalse())
		Expect(repos.Allows(statements, "s3:GetObject", "anything")).To(BeTrue())
	})

	It("denies when no statement matches", func() {
		Expect(repos.Allows(nil, "s3:GetObject", "anything")).To(BeFalse())
	})
})

var _ = Describe("AllowedResources", func() {
	It("deduplicates resource patterns", func() {
		statements := []permissions.Statement{
			{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:GetObject"},
				Resources: []string{"arn:aws:s3:::data/*"},
			},
			{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:*"},
				Resources: []string{"arn:aws:s3:::data/*", "arn:aws:s3:::logs/*"},
			},
		}

		resources := repos.AllowedResources(statements, "s3:GetObject")

		Expect(resources).To(Equal([]string{"arn:aws:s3:::data/*", "arn:aws:s3:::logs/*"}))
	})

	It("ignores Deny statements", func() {
		statements := []permissions.Statement{
			{
				Effect:    permissions.Deny,
				Actions:   []string{"s3:*"},
				Resources: []string{"*"},
			},
		}

		Expect(repos.AllowedResources(statements, "s3:GetObject")).To(BeEmpty())
	})
})
