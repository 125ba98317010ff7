package reposbehaviors_test

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/logx/lagerx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

func BehavesLikeAnAccessRepo(subjectCreator func() (repos.RoleRepo, repos.AccessRepo)) {
	var (
		roleRepo   repos.RoleRepo
		accessRepo repos.AccessRepo

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc
	)

	BeforeEach(func() {
		roleRepo, accessRepo = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 1*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("stack-test"))
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#HasAccess", func() {
		It("answers yes for an action and resource matched by an Allow statement", func() {
			name := uuid.NewV4().String()
			_, err := roleRepo.CreateRole(ctx, logger, name, permissions.Statement{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:*"},
				Resources: []string{"arn:aws:s3:::data/*"},
			})
			Expect(err).NotTo(HaveOccurred())

			hasAccess, err := accessRepo.HasAccess(ctx, logger, repos.HasAccessQuery{
				RoleName: name,
				Action:   "s3:GetObject",
				Resource: "arn:aws:s3:::data/reports.csv",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(hasAccess).To(BeTrue())
		})

		It("answers no for an unmatched action", func() {
			name := uuid.NewV4().String()
			_, err := roleRepo.CreateRole(ctx, logger, name, permissions.Statement{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:GetObject"},
				Resources: []string{"*"},
			})
			Expect(err).NotTo(HaveOccurred())

			hasAccess, err := accessRepo.HasAccess(ctx, logger, repos.HasAccessQuery{
				RoleName: name,
				Action:   "s3:PutObject",
				Resource: "arn:aws:s3:::data/reports.csv",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(hasAccess).To(BeFalse())
		})

		It("lets a matching Deny win over a matching Allow", func() {
			name := uuid.NewV4().String()
			_, err := roleRepo.CreateRole(ctx, logger, name,
				permissions.Statement{
					Effect:    permissions.Allow,
					Actions:   []string{"s3:*"},
					Resources: []string{"*"},
				},
				permissions.Statement{
					Effect:    permissions.Deny,
					Actions:   []string{"s3:DeleteObject"},
					Resources: []string{"*"},
				},
			)
			Expect(err).NotTo(HaveOccurred())

			hasAccess, err := accessRepo.HasAccess(ctx, logger, repos.HasAccessQuery{
				RoleName: name,
				Action:   "s3:DeleteObject",
				Resource: "arn:aws:s3:::data/reports.csv",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(hasAccess).To(BeFalse())
		})

		It("fails if the role does not exist", func() {
			_, err := accessRepo.HasAccess(ctx, logger, repos.HasAccessQuery{
				RoleName: uuid.NewV4().String(),
				Action:   "s3:GetObject",
				Resource: "*",
			})

			Expect(err).To(Equal(permissions.ErrRoleNotFound))
		})
	})

	Describe("#ListAllowedResources", func() {
		It("collects resource patterns of Allow statements matching the action", func() {
			name := uuid.NewV4().String()
			_, err := roleRepo.CreateRole(ctx, logger, name,
				permissions.Statement{
					Effect:    permissions.Allow,
					Actions:   []string{"dynamodb:*"},
					Resources: []string{"arn:aws:dynamodb:::table/orders"},
				},
				permissions.Statement{
					Effect:    permissions.Allow,
					Actions:   []string{"s3:GetObject"},
					Resources: []string{"arn:aws:s3:::data/*"},
				},
				permissions.Statement{
					Effect:    permissions.Deny,
					Actions:   []string{"dynamodb:DeleteTable"},
					Resources: []string{"*"},
				},
			)
			Expect(err).NotTo(HaveOccurred())

			resources, err := accessRepo.ListAllowedResources(ctx, logger, repos.ListAllowedResourcesQuery{
				RoleName: name,
				Action:   "dynamodb:Query",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(resources).To(ConsistOf("arn:aws:dynamodb:::table/orders"))
		})

		It("fails if the role does not exist", func() {
			_, err := accessRepo.ListAllowedResources(ctx, logger, repos.ListAllowedResourcesQuery{
				RoleName: uuid.NewV4().String(),
				Action:   "s3:GetObject",
			})

			Expect(err).To(Equal(permissions.ErrRoleNotFound))
		})
	})
}
