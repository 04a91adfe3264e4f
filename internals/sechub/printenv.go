package sechub

import (
	"context"
	"os"

	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/ui"
)

// PrintEnvCommand prints out debug statements about all environment variables.
type PrintEnvCommand struct {
	app     *cli.App
	io      ui.IO
	osEnv   func() []string
	verbose bool
}

// NewPrintEnvCommand creates a new PrintEnvCommand.
func NewPrintEnvCommand(app *cli.App, io ui.IO) *PrintEnvCommand {
	return &PrintEnvCommand{
		app:   app,
		io:    io,
		osEnv: os.Environ,
	}
}

// Register registers the command and its flags on the provided Registerer.
func (cmd *PrintEnvCommand) Register(r cli.Registerer) {
	clause := r.Command("env", "Print the "+ApplicationName+" environment variables that are set and whether they are recognized.")
	clause.Alias("printenv")
	clause.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Also list recognized environment variables that are not set.")

	clause.BindAction(func(context.Context) error {
		return cmd.Run()
	})
}

// Run prints out debug statements about all environment variables.
func (cmd *PrintEnvCommand) Run() error {
	return cmd.app.PrintEnv(cmd.io.Output(), cmd.verbose, cmd.osEnv)
}
