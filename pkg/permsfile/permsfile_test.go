package permsfile_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/junaway/serverless-stack/pkg/permissions"
	"github.com/junaway/serverless-stack/pkg/permsfile"
)

var _ = Describe("Parse", func() {
	It("parses the wildcard sentinel", func() {
		perms, err := permsfile.Parse([]byte("all: true\n"))

		Expect(err).NotTo(HaveOccurred())
		Expect(perms.IsAll()).To(BeTrue())
	})

	It("parses service entries in order", func() {
		perms, err := permsfile.Parse([]byte(`
permissions:
  - service: bucket
  - service: ses
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(perms.Items()).To(Equal([]permissions.Permission{
			permissions.ServiceAccess("bucket"),
			permissions.ServiceAccess("ses"),
		}))
	})

	It("parses statement entries", func() {
		perms, err := permsfile.Parse([]byte(`
permissions:
  - statement:
      sid: ReadData
      effect: Allow
      actions: [s3:GetObject, s3:ListBucket]
      resources: ["arn:aws:s3:::data/*"]
`))

		Expect(err).NotTo(HaveOccurred())
		Expect(perms.Items()).To(ConsistOf(permissions.Statement{
			Sid:       "ReadData",
			Effect:    permissions.Allow,
			Actions:   []string{"s3:GetObject", "s3:ListBucket"},
			Resources: []string{"arn:aws:s3:::data/*"},
		}))
	})

	It("rejects invalid statements", func() {
		_, err := permsfile.Parse([]byte(`
permissions:
  - statement:
      effect: Allow
`))

		Expect(err).To(MatchError(permissions.ErrInvalidStatement))
	})

	It("rejects entries that set both shapes", func() {
		_, err := permsfile.Parse([]byte(`
permissions:
  - service: bucket
    statement:
      effect: Allow
      actions: [s3:*]
      resources: ["*"]
`))

		Expect(err).To(MatchError(permsfile.ErrAmbiguousEntry))
	})

	It("rejects empty entries", func() {
		_, err := permsfile.Parse([]byte("permissions:\n  - {}\n"))

		Expect(err).To(MatchError(permsfile.ErrAmbiguousEntry))
	})

	It("rejects an empty specification", func() {
		_, err := permsfile.Parse([]byte("permissions: []\n"))

		Expect(err).To(MatchError(permsfile.ErrEmptySpecification))
	})

	It("rejects combining all with a permission list", func() {
		_, err := permsfile.Parse([]byte(`
all: true
permissions:
  - service: bucket
`))

		Expect(err).To(MatchError(permsfile.ErrAllWithEntries))
	})

	It("rejects unknown keys", func() {
		_, err := permsfile.Parse([]byte("grants:\n  - service: bucket\n"))

		Expect(err).To(HaveOccurred())
	})
})
