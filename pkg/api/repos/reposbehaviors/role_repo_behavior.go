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

func BehavesLikeARoleRepo(subjectCreator func() repos.RoleRepo) {
	var (
		subject repos.RoleRepo

		ctx    context.Context
		logger logx.Logger

		cancelFunc context.CancelFunc
	)

	BeforeEach(func() {
		subject = subjectCreator()

		ctx, cancelFunc = context.WithTimeout(context.Background(), 1*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("stack-test"))
	})

	AfterEach(func() {
		cancelFunc()
	})

	Describe("#CreateRole", func() {
		It("saves the role with its initial statements", func() {
			name := uuid.NewV4().String()
			statement := permissions.Statement{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:GetObject"},
				Resources: []string{"arn:aws:s3:::data/*"},
			}

			role, err := subject.CreateRole(ctx, logger, name, statement)

			Expect(err).NotTo(HaveOccurred())
			Expect(role).NotTo(BeNil())
			Expect(role.Name).To(Equal(name))

			statements, err := subject.ListRoleStatements(ctx, logger, repos.ListRoleStatementsQuery{RoleName: name})
			Expect(err).NotTo(HaveOccurred())
			Expect(statements).To(ConsistOf(statement))
		})

		It("fails if a role with the name already exists", func() {
			name := uuid.NewV4().String()

			_, err := subject.CreateRole(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			_, err = subject.CreateRole(ctx, logger, name)
			Expect(err).To(Equal(permissions.ErrRoleAlreadyExists))
		})
	})

	Describe("#DeleteRole", func() {
		It("deletes the role and its statements", func() {
			name := uuid.NewV4().String()

			_, err := subject.CreateRole(ctx, logger, name, permissions.WildcardStatement)
			Expect(err).NotTo(HaveOccurred())

			err = subject.DeleteRole(ctx, logger, name)
			Expect(err).NotTo(HaveOccurred())

			_, err = subject.ListRoleStatements(ctx, logger, repos.ListRoleStatementsQuery{RoleName: name})
			Expect(err).To(Equal(permissions.ErrRoleNotFound))
		})

		It("fails if the role does not exist", func() {
			name := uuid.NewV4().String()

			err := subject.DeleteRole(ctx, logger, name)

			Expect(err).To(Equal(permissions.ErrRoleNotFound))
		})
	})

	Describe("#FindRole", func() {
		It("returns the role with all attached statements", func() {
			name := uuid.NewV4().String()
			statement1 := permissions.Statement{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:GetObject"},
				Resources: []string{"*"},
			}
			statement2 := permissions.Statement{
				Effect:    permissions.Deny,
				Actions:   []string{"s3:DeleteBucket"},
				Resources: []string{"*"},
			}

			_, err := subject.CreateRole(ctx, logger, name, statement1)
			Expect(err).NotTo(HaveOccurred())

			err = subject.AttachStatements(ctx, logger, name, statement2)
			Expect(err).NotTo(HaveOccurred())

			role, err := subject.FindRole(ctx, logger, repos.FindRoleQuery{RoleName: name})
			Expect(err).NotTo(HaveOccurred())
			Expect(role.Name).To(Equal(name))
			Expect(role.Statements()).To(Equal([]permissions.Statement{statement1, statement2}))
		})

		It("fails if the role does not exist", func() {
			query := repos.FindRoleQuery{
				RoleName: uuid.NewV4().String(),
			}

			_, err := subject.FindRole(ctx, logger, query)

			Expect(err).To(Equal(permissions.ErrRoleNotFound))
		})
	})

	Describe("#AttachStatements", func() {
		It("appends statements in order", func() {
			name := uuid.NewV4().String()
			statement1 := permissions.Statement{
				Effect:    permissions.Allow,
				Actions:   []string{"sqs:SendMessage"},
				Resources: []string{"*"},
			}
			statement2 := permissions.Statement{
				Effect:    permissions.Deny,
				Actions:   []string{"sqs:DeleteQueue"},
				Resources: []string{"*"},
			}

			_, err := subject.CreateRole(ctx, logger, name, statement1)
			Expect(err).NotTo(HaveOccurred())

			err = subject.AttachStatements(ctx, logger, name, statement2)
			Expect(err).NotTo(HaveOccurred())

			statements, err := subject.ListRoleStatements(ctx, logger, repos.ListRoleStatementsQuery{RoleName: name})
			Expect(err).NotTo(HaveOccurred())
			Expect(statements).To(Equal([]permissions.Statement{statement1, statement2}))
		})

		It("fails if the role does not exist", func() {
			err := subject.AttachStatements(ctx, logger, uuid.NewV4().String(), permissions.WildcardStatement)

			Expect(err).To(Equal(permissions.ErrRoleNotFound))
		})
	})

	Describe("#ListRoleStatements", func() {
		It("fails if the role does not exist", func() {
			query := repos.ListRoleStatementsQuery{
				RoleName: uuid.NewV4().String(),
			}

			_, err := subject.ListRoleStatements(ctx, logger, query)

			Expect(err).To(MatchError(permissions.ErrRoleNotFound))
		})
	})
}
