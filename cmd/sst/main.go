package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/junaway/serverless-stack/cmd"
)

type options struct {
	Serve   cmd.ServeCommand   `command:"serve" alias:"s" description:"Run the permission registry API"`
	Migrate cmd.MigrateCommand `command:"migrate" alias:"m" description:"Manage the registry database schema"`
	Attach  cmd.AttachCommand  `command:"attach" alias:"a" description:"Resolve permissions and attach them to an execution role"`
}

func main() {
	parserOpts := &options{}
	parser := flags.NewParser(parserOpts, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		os.Exit(1)
	}
}
