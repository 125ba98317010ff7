package cmd

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/junaway/serverless-stack/cmd/flags"
	"github.com/junaway/serverless-stack/pkg/api/repos"
	"github.com/junaway/serverless-stack/pkg/api/repos/db"
	"github.com/junaway/serverless-stack/pkg/logx"
	"github.com/junaway/serverless-stack/pkg/permissions"
	"github.com/junaway/serverless-stack/pkg/permsfile"
)

// AttachCommand resolves a permission specification into IAM statements for
// an execution role, records them in the registry, and prints the resulting
// policy document.
type AttachCommand struct {
	Logger flags.LagerFlag

	Role       string `long:"role" description:"Name of the execution role" required:"true"`
	File       string `long:"file" description:"Path of the YAML permission specification" required:"true"`
	CreateRole bool   `long:"create-role" description:"Create the role if it does not already exist"`
	DryRun     bool   `long:"dry-run" description:"Resolve and print the policy document without touching the registry"`

	DB flags.DBFlag `group:"DB" namespace:"db"`
}

func (cmd AttachCommand) Execute([]string) error {
	logger := cmd.Logger.Logger("sst").WithName("attach")
	ctx := context.Background()

	contents, err := ioutil.ReadFile(cmd.File)
	if err != nil {
		logger.Error(failedToReadPermissionsFile, err)
		return err
	}

	perms, err := permsfile.Parse(contents)
	if err != nil {
		logger.Error(failedToParsePermissionsFile, err)
		return err
	}

	role := permissions.NewExecutionRole(cmd.Role)
	if err := permissions.Attach(ctx, logger, role, perms); err != nil {
		logger.Error(failedToResolvePermissions, err)
		return err
	}

	if !cmd.DryRun {
		conn, err := cmd.DB.Connect(ctx, logger)
		if err != nil {
			logger.Error(failedToOpenSQLConnection, err)
			return err
		}
		defer conn.Close()

		if err := cmd.record(ctx, logger, db.NewStore(conn), role); err != nil {
			logger.Error(failedToRecordStatements, err)
			return err
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(role.Document()); err != nil {
		return err
	}

	logger.Info(success)
	return nil
}

func (cmd AttachCommand) record(ctx context.Context, logger logx.Logger, roleRepo repos.RoleRepo, role *permissions.ExecutionRole) error {
	if cmd.CreateRole {
		_, err := roleRepo.CreateRole(ctx, logger, role.Name, role.Statements()...)
		if err != permissions.ErrRoleAlreadyExists {
			return err
		}
	}

	return roleRepo.AttachStatements(ctx, logger, role.Name, role.Statements()...)
}
