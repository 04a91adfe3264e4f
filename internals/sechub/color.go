package sechub

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/sechub/sechub-cli/internals/cli"
)

// noColorFlag configures the global behaviour to disable colored output.
type noColorFlag bool

func (f noColorFlag) Type() string {
	return "noColorFlag"
}

// init disables colored output based on the value of the flag.
func (f noColorFlag) init() {
	if f {
		color.NoColor = true
	}
}

// RegisterColorFlag registers a color flag that configures whether colored output is used.
func RegisterColorFlag(app *cli.App) {
	flag := noColorFlag(false)
	app.PersistentFlags().Var(&flag, "no-color", "Disable colored output.")
}

// String implements the flag.Value interface.
func (f noColorFlag) String() string {
	return strconv.FormatBool(bool(f))
}

// Set disables colors when the given value is true.
func (f *noColorFlag) Set(value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*f = noColorFlag(b)
	f.init()
	return nil
}

// IsBoolFlag makes the flag usable without an argument.
func (f noColorFlag) IsBoolFlag() bool {
	return true
}
