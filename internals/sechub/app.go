// Package sechub implements the command-line interface that exposes every
// Security Hub operation as a command.
package sechub

import (
	"context"
	"fmt"
	"strings"

	"github.com/sechub/sechub-cli/internals/catalog"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/ui"
	"github.com/secrethub/secrethub-go/internals/errio"
)

const (
	// ApplicationName is the name of the command-line application.
	ApplicationName = "sechub"
)

// Build information, set with -ldflags at release time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Errors
var (
	errMain = errio.Namespace(ApplicationName)

	ErrCannotFindHomeDir = errMain.Code("cannot_find_home_dir").ErrorPref(
		"cannot find your home directory: %s\n\n" +
			fmt.Sprintf(
				"Use the --config-file flag or %s_CONFIG_FILE environment variable to point to a configuration file in a custom location.",
				strings.ToUpper(ApplicationName),
			),
	)
	ErrFlagsConflict        = errMain.Code("flags_conflict").ErrorPref("these flags cannot be used together: %s")
	ErrCannotDoWithoutForce = errMain.Code("cannot_do_without_force").Error(
		"cannot perform this action without confirmation or a --force flag.\n\n" +
			"This usually happens when you run the command in a non-interactive shell or pipe both the input and output of the command. " +
			"If you are sure you want to perform this action, run the same command with the --force or -f flag.")
	ErrNoDataOnStdin        = errMain.Code("no_data_on_stdin").Error("expected data on stdin but none found")
	ErrCannotReadInput      = errMain.Code("cannot_read_input").ErrorPref("cannot read input document from %s: %s")
	ErrInvalidInputDocument = errMain.Code("invalid_input_document").ErrorPref("invalid input document: %s")
	ErrInvalidBatchLine     = errMain.Code("invalid_batch_line").ErrorPref("invalid input document on line %d: %s")
	ErrBatchFailed          = errMain.Code("batch_failed").ErrorPref("%d of %d invocations failed")
	ErrInvalidAWSRegion     = errMain.Code("invalid_region").ErrorPref("%s is not a known AWS region. Use --endpoint-url to reach a region this version does not know about")
	ErrMissingRegion        = errMain.Code("missing_region").Errorf(
		"no AWS region configured. Use the --region flag, the %s_REGION or AWS_REGION environment variable, or set region in the configuration file",
		strings.ToUpper(ApplicationName),
	)
	ErrCannotCreateSession = errMain.Code("cannot_create_session").ErrorPref("cannot create an AWS session: %s")
	ErrUnknownOperation    = errMain.Code("unknown_operation").ErrorPref("unknown operation %s. Run `" + ApplicationName + " operations ls` to list all operations")
	ErrInvalidOutputFormat = errMain.Code("invalid_output_format").ErrorPref("invalid output format %q: must be one of json, yaml or text")
)

// App is the sechub command-line application.
type App struct {
	cli           *cli.App
	io            ui.IO
	logger        *cli.Logger
	config        *ConfigLoader
	clientFactory *ClientFactory
	output        *Output
	catalog       *catalog.Catalog
}

// NewApp creates a new command-line application.
func NewApp() *App {
	io := ui.NewUserIO()
	help := "The sechub command-line interface runs AWS Security Hub operations.\n\n" +
		"Every operation of the Security Hub API is available as a command named after it, e.g. `" +
		ApplicationName + " get-findings`. Run `" + ApplicationName + " operations ls` to list them.\n\n" +
		"The CLI is configurable through command-line flags, environment variables and a configuration file. " +
		"Options set on the command-line take precedence over those set in the environment, " +
		"which take precedence over the configuration file. " +
		"The format for environment variables is `SECHUB_[COMMAND_]FLAG_NAME`."
	clientFactory := NewClientFactory()
	return &App{
		cli:           cli.NewApp(ApplicationName, help),
		io:            io,
		logger:        cli.NewLogger(ApplicationName),
		config:        NewConfigLoader(),
		clientFactory: clientFactory,
		output:        NewOutput(io),
		catalog:       catalog.New(clientFactory.NewClient),
	}
}

// Version adds a flag for displaying the application version number.
func (app *App) Version(version string, commit string) *App {
	app.cli = app.cli.Version(ApplicationName + " version " + version + ", build " + commit)
	return app
}

// Run builds the command-line application, parses the arguments,
// configures global behavior and executes the command given by the args.
func (app *App) Run(ctx context.Context, args []string) error {
	// Construct the CLI
	RegisterColorFlag(app.cli)
	RegisterDebugFlag(app.cli, app.logger)
	app.config.Register(app.cli)
	app.clientFactory.Register(app.cli)
	app.output.Register(app.cli)
	app.cli.Root.AddPersistentPreRunE(app.config.Apply(app.cli, app.clientFactory, app.output))
	app.registerCommands()

	return app.cli.Run(ctx, args)
}

// registerCommands initializes all commands and registers them on the app.
func (app *App) registerCommands() {
	// Management commands
	NewOperationsCommand(app.io, app.catalog, app.output).Register(app.cli)
	NewPrintEnvCommand(app.cli, app.io).Register(app.cli)

	// Operations
	for _, d := range app.catalog.All() {
		NewOperationCommand(d, app.io, app.logger, app.output).Register(app.cli)
	}
}
