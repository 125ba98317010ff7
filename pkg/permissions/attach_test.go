package permissions_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/junaway/serverless-stack/pkg/logx/lagerx"
	"github.com/junaway/serverless-stack/pkg/permissions"
)

type fakeTopic struct {
	fullAccessGranted bool
	grantErr          error
}

func (t *fakeTopic) GrantFullAccess(role *permissions.ExecutionRole) error {
	if t.grantErr != nil {
		return t.grantErr
	}

	t.fullAccessGranted = true
	role.AttachStatement(permissions.Statement{
		Effect:    permissions.Allow,
		Actions:   []string{"sns:*"},
		Resources: []string{"arn:aws:sns:::fake-topic"},
	})
	return nil
}

func (t *fakeTopic) Grant(method string, role *permissions.ExecutionRole) error {
	switch method {
	case "grantPublish":
		role.AttachStatement(permissions.Statement{
			Effect:    permissions.Allow,
			Actions:   []string{"sns:Publish"},
			Resources: []string{"arn:aws:sns:::fake-topic"},
		})
		return nil
	default:
		return permissions.ErrGrantNotFound
	}
}

var _ = Describe("Attach", func() {
	var (
		ctx        context.Context
		cancelFunc context.CancelFunc
		logger     *lagerx.Logger

		role *permissions.ExecutionRole
	)

	BeforeEach(func() {
		ctx, cancelFunc = context.WithTimeout(context.Background(), 1*time.Second)
		logger = lagerx.NewLogger(lagertest.NewTestLogger("permissions-test"))

		role = permissions.NewExecutionRole("my-function-role")
	})

	AfterEach(func() {
		cancelFunc()
	})

	Context("when given the wildcard sentinel", func() {
		It("attaches a wildcard administrative statement", func() {
			err := permissions.Attach(ctx, logger, role, permissions.All())

			Expect(err).NotTo(HaveOccurred())
			Expect(role.Statements()).To(ConsistOf(permissions.WildcardStatement))
		})
	})

	Context("when given service names", func() {
		It("attaches the administrative actions of each service", func() {
			perms := permissions.NewPermissions(
				permissions.ServiceAccess("bucket"),
				permissions.ServiceAccess("table"),
			)

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).NotTo(HaveOccurred())
			statements := role.Statements()
			Expect(statements).To(HaveLen(2))
			Expect(statements[0].Actions).To(Equal([]string{"s3:*"}))
			Expect(statements[0].Resources).To(Equal([]string{"*"}))
			Expect(statements[1].Actions).To(Equal([]string{"dynamodb:*"}))
		})

		It("expands unregistered service identifiers to a service wildcard", func() {
			perms := permissions.NewPermissions(permissions.ServiceAccess("ses"))

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).NotTo(HaveOccurred())
			Expect(role.Statements()[0].Actions).To(Equal([]string{"ses:*"}))
		})

		It("fails on a malformed service name", func() {
			perms := permissions.NewPermissions(permissions.ServiceAccess("Not A Service"))

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).To(MatchError(permissions.ErrServiceNotFound))
			Expect(role.Statements()).To(BeEmpty())
		})
	})

	Context("when given construct references", func() {
		It("invokes the construct's full-access grant", func() {
			topic := &fakeTopic{}
			perms := permissions.NewPermissions(permissions.ConstructAccess{Construct: topic})

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).NotTo(HaveOccurred())
			Expect(topic.fullAccessGranted).To(BeTrue())
			Expect(role.Statements()).To(HaveLen(1))
			Expect(role.Statements()[0].Actions).To(Equal([]string{"sns:*"}))
		})

		It("propagates the grant error", func() {
			grantErr := errors.New("bucket is gone")
			topic := &fakeTopic{grantErr: grantErr}
			perms := permissions.NewPermissions(permissions.ConstructAccess{Construct: topic})

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).To(MatchError(grantErr))
		})

		It("fails on a nil construct", func() {
			perms := permissions.NewPermissions(permissions.ConstructAccess{})

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).To(MatchError(permissions.ErrNilConstruct))
		})
	})

	Context("when given (construct, method) tuples", func() {
		It("dispatches to the named grant method", func() {
			topic := &fakeTopic{}
			perms := permissions.NewPermissions(permissions.MethodAccess{
				Construct: topic,
				Method:    "grantPublish",
			})

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).NotTo(HaveOccurred())
			Expect(role.Statements()).To(HaveLen(1))
			Expect(role.Statements()[0].Actions).To(Equal([]string{"sns:Publish"}))
		})

		It("fails when the construct does not recognize the method", func() {
			topic := &fakeTopic{}
			perms := permissions.NewPermissions(permissions.MethodAccess{
				Construct: topic,
				Method:    "grantShred",
			})

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).To(MatchError(permissions.ErrGrantNotFound))
		})
	})

	Context("when given raw statements", func() {
		It("attaches them directly", func() {
			statement := permissions.Statement{
				Effect:    permissions.Allow,
				Actions:   []string{"s3:GetObject"},
				Resources: []string{"arn:aws:s3:::my-bucket/*"},
			}
			perms := permissions.NewPermissions(statement)

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).NotTo(HaveOccurred())
			Expect(role.Statements()).To(ConsistOf(statement))
		})

		It("rejects invalid statements", func() {
			perms := permissions.NewPermissions(permissions.Statement{
				Effect: permissions.Allow,
			})

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).To(MatchError(permissions.ErrInvalidStatement))
			Expect(role.Statements()).To(BeEmpty())
		})
	})

	Context("when given a mixed specification", func() {
		It("attaches in order and stops at the first failure", func() {
			topic := &fakeTopic{}
			perms := permissions.NewPermissions(
				permissions.ServiceAccess("queue"),
				permissions.MethodAccess{Construct: topic, Method: "grantShred"},
				permissions.ServiceAccess("topic"),
			)

			err := permissions.Attach(ctx, logger, role, perms)

			Expect(err).To(MatchError(permissions.ErrGrantNotFound))
			statements := role.Statements()
			Expect(statements).To(HaveLen(1))
			Expect(statements[0].Actions).To(Equal([]string{"sqs:*"}))
		})
	})
})
