package sechub

import (
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/spf13/cobra"
)

// RegisterDebugFlag registers a debug flag that changes the log level of the given logger to DEBUG.
// The logger is configured after all flags are parsed, so it honors --no-color too.
func RegisterDebugFlag(app *cli.App, logger *cli.Logger) {
	var debug bool
	app.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug mode.")
	app.Root.AddPersistentPreRunE(func(*cobra.Command, []string) error {
		logger.Configure(colorable.NewColorableStderr(), debug, !color.NoColor)
		return nil
	})
}
