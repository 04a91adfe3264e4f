package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"bitbucket.org/zombiezen/cardcpx/natsort"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// DefaultEnvSeparator defines how to join env var names.
	DefaultEnvSeparator = "_"
	// DefaultCommandDelimiters defines which delimiters should be replaced.
	DefaultCommandDelimiters = []string{" ", "-"}
)

// App represents a command-line application that wraps the
// cobra library and adds functionality for verifying environment
// variables used for configuring the cli.
type App struct {
	Root             *CommandClause
	name             string
	delimiters       []string
	separator        string
	knownEnvVars     map[string]struct{}
	extraEnvVarFuncs []func(key string) bool
}

// NewApp defines a new command-line application.
func NewApp(name, help string) *App {
	app := &App{
		name:             formatName(name, "", DefaultEnvSeparator, DefaultCommandDelimiters...),
		delimiters:       DefaultCommandDelimiters,
		separator:        DefaultEnvSeparator,
		knownEnvVars:     make(map[string]struct{}),
		extraEnvVarFuncs: []func(string) bool{},
	}
	app.Root = newCommandClause(app, name, help)
	app.registerRootEnvVarParsing()
	return app
}

// Command defines a new top-level command with the given name and help text.
func (a *App) Command(name, help string) *CommandClause {
	return a.Root.Command(name, help)
}

// Version adds a flag for displaying the application version number.
func (a *App) Version(version string) *App {
	a.Root.Cmd.Version = version
	return a
}

// Run parses the arguments and executes the selected command with the given context.
func (a *App) Run(ctx context.Context, args []string) error {
	a.Root.Cmd.SetArgs(args)
	return a.Root.Cmd.ExecuteContext(ctx)
}

// registerEnvVar ensures the app recognizes an environment variable.
func (a *App) registerEnvVar(name string) {
	a.knownEnvVars[strings.ToUpper(name)] = struct{}{}
}

// unregisterEnvVar ensures the app does not recognize an environment variable.
func (a *App) unregisterEnvVar(name string) {
	delete(a.knownEnvVars, strings.ToUpper(name))
}

// ExtraEnvVarFunc takes a function that determines additional environment variables
// recognized by the application.
func (a *App) ExtraEnvVarFunc(f func(key string) bool) *App {
	if f != nil {
		a.extraEnvVarFuncs = append(a.extraEnvVarFuncs, f)
	}
	return a
}

func (a *App) isExtraEnvVar(key string) bool {
	for _, check := range a.extraEnvVarFuncs {
		if check(key) {
			return true
		}
	}
	return false
}

// PrintEnv reads all environment variables starting with the app name and writes
// a table with the keys and their status: set, empty, unrecognized. The value
// of environment variables are not printed out, as they may contain credentials.
// The list is limited to variables that are actually set in the environment.
// Setting verbose to true will also include all known variables that are not set.
func (a *App) PrintEnv(w io.Writer, verbose bool, osEnv func() []string) error {
	tabWriter := tabwriter.NewWriter(w, 0, 4, 4, ' ', 0)
	fmt.Fprintf(tabWriter, "%s\t%s\n", "NAME", "STATUS")

	envVarStatus := make(map[string]string)
	for _, envVar := range osEnv() {
		key, value, match := splitVar(a.name, a.separator, envVar)
		if !match {
			continue
		}
		key = strings.ToUpper(key)
		switch {
		case !a.isKnownEnvVar(key):
			envVarStatus[key] = "unrecognized"
		case value == "":
			envVarStatus[key] = "empty"
		default:
			envVarStatus[key] = "set"
		}
	}

	if verbose {
		for known := range a.knownEnvVars {
			if _, isSet := envVarStatus[known]; !isSet {
				envVarStatus[known] = "-"
			}
		}
	}

	rows := make([]string, 0, len(envVarStatus))
	for envVar, status := range envVarStatus {
		rows = append(rows, fmt.Sprintf("%s\t%s", envVar, status))
	}

	natsort.Strings(rows)
	for _, row := range rows {
		fmt.Fprintln(tabWriter, row)
	}

	return tabWriter.Flush()
}

func (a *App) isKnownEnvVar(key string) bool {
	_, isKnown := a.knownEnvVars[key]
	return isKnown || a.isExtraEnvVar(key)
}

// CheckStrictEnv checks that every environment variable that starts with the app name is recognized by the application.
func (a *App) CheckStrictEnv(osEnv func() []string) error {
	for _, envVar := range osEnv() {
		key, _, match := splitVar(a.name, a.separator, envVar)
		if match && !a.isKnownEnvVar(strings.ToUpper(key)) {
			return fmt.Errorf("environment variable set, but not recognized: %s", strings.ToUpper(key))
		}
	}
	return nil
}

// PersistentFlags returns a flag set that allows configuring
// global persistent flags (that work on all commands of the CLI).
func (a *App) PersistentFlags() *FlagSet {
	return &FlagSet{FlagSet: a.Root.Cmd.PersistentFlags(), cmd: a.Root}
}

// registerRootEnvVarParsing ensures that flags on the root command with environment variables are set to
// the value of their corresponding environment variable if they are not set already.
func (a *App) registerRootEnvVarParsing() {
	a.Root.AddPersistentPreRunE(func(_ *cobra.Command, _ []string) error {
		for _, flag := range a.Root.flags {
			err := setFlagFromEnv(flag)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// CommandClause represents a command clause in a command-line application.
type CommandClause struct {
	Cmd   *cobra.Command
	name  string
	App   *App
	Args  []Argument
	flags map[string]*Flag
}

func newCommandClause(app *App, name, help string) *CommandClause {
	clause := &CommandClause{
		Cmd:  &cobra.Command{Use: name, Short: help, SilenceErrors: true, SilenceUsage: true},
		name: name,
		App:  app,
	}
	clause.Cmd.SetUsageFunc(func(command *cobra.Command) error {
		err := ApplyTemplate(command.OutOrStdout(), UsageTemplate, clause)
		if err != nil {
			fmt.Fprint(os.Stderr, err.Error())
		}
		return err
	})
	clause.Cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		err := ApplyTemplate(command.OutOrStdout(), HelpTemplate, clause)
		if err != nil {
			fmt.Fprint(os.Stderr, err.Error())
		}
	})
	return clause
}

// Command adds a new subcommand to this command.
func (c *CommandClause) Command(name, help string) *CommandClause {
	clause := newCommandClause(c.App, name, help)
	c.Cmd.AddCommand(clause.Cmd)
	return clause
}

// Hidden hides the command in help texts.
func (c *CommandClause) Hidden() *CommandClause {
	c.Cmd.Hidden = true
	return c
}

func (c *CommandClause) fullCommand() string {
	out := []string{c.Cmd.Use}
	for p := c.Cmd.Parent(); p != nil; p = p.Parent() {
		out = append([]string{p.Use}, out...)
	}
	return strings.Join(out, " ")
}

// HelpLong sets the text shown by the help of the command.
func (c *CommandClause) HelpLong(helpLong string) {
	c.Cmd.Long = helpLong
}

// Alias adds an alternative name for the command.
func (c *CommandClause) Alias(alias string) {
	c.Cmd.Aliases = append(c.Cmd.Aliases, alias)
}

// registerEnvVarParsing ensures that flags with environment variables are set to
// the value of their corresponding environment variable if they are not set already.
func (c *CommandClause) registerEnvVarParsing() {
	c.AddPreRunE(func(_ *cobra.Command, _ []string) error {
		for _, flag := range c.flags {
			err := setFlagFromEnv(flag)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Flag returns the flag with the given long name, adding an environment
// variable configurable by APP_COMMAND_FLAG_NAME. The flag must have been
// defined on the command's flag set.
func (c *CommandClause) Flag(name string) *Flag {
	if flag, ok := c.flags[name]; ok {
		return flag
	}
	fullCmd := strings.Replace(c.fullCommand(), " ", c.App.separator, -1)
	prefix := formatName(fullCmd, "", c.App.separator, c.App.delimiters...)
	envVar := formatName(name, prefix, c.App.separator, c.App.delimiters...)

	flag := (&Flag{
		flag: c.Cmd.Flag(name),
		app:  c.App,
	}).Envar(envVar)
	if c.flags == nil {
		if c != c.App.Root {
			c.registerEnvVarParsing()
		}
		c.flags = make(map[string]*Flag)
	}
	c.flags[name] = flag
	return flag
}

// lookupFlag returns the registered flag with the given name on this command
// or one of its parents, without registering a new one.
func (c *CommandClause) lookupFlag(name string) (*Flag, bool) {
	if flag, ok := c.flags[name]; ok {
		return flag, true
	}
	if c.App != nil && c != c.App.Root {
		if flag, ok := c.App.Root.flags[name]; ok {
			return flag, true
		}
	}
	return nil, false
}

// Flags returns the flag set of the command.
func (c *CommandClause) Flags() *FlagSet {
	return &FlagSet{FlagSet: c.Cmd.Flags(), cmd: c}
}

// BindArguments registers the positional arguments of the command.
// They are parsed and validated before the action runs.
func (c *CommandClause) BindArguments(params []Argument) {
	c.Args = params
	if params != nil {
		c.AddPreRunE(func(cmd *cobra.Command, args []string) error {
			if err := c.argumentError(args); err != nil {
				return err
			}
			return ArgumentRegister(params, args)
		})
	}
}

// BindAction sets the function that is executed when the command runs.
func (c *CommandClause) BindAction(fn func(ctx context.Context) error) {
	if fn != nil {
		c.Cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return fn(cmd.Context())
		}
	}
}

// AddPreRunE adds a function to run before the action of the command,
// after the ones that are already registered.
func (c *CommandClause) AddPreRunE(f func(*cobra.Command, []string) error) {
	if c.Cmd.PreRunE == nil {
		c.Cmd.PreRunE = f
		return
	}
	f1 := c.Cmd.PreRunE
	c.Cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		err := f1(cmd, args)
		if err != nil {
			return err
		}
		return f(cmd, args)
	}
}

// AddPersistentPreRunE adds a function to run before the action of the command
// and all of its subcommands.
func (c *CommandClause) AddPersistentPreRunE(f func(*cobra.Command, []string) error) {
	if c.Cmd.PersistentPreRunE == nil {
		c.Cmd.PersistentPreRunE = f
		return
	}
	f1 := c.Cmd.PersistentPreRunE
	c.Cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		err := f1(cmd, args)
		if err != nil {
			return err
		}
		return f(cmd, args)
	}
}

// setFlagFromEnv sets the value of a flag to the value found in the environment if the flag has not been
// explicitly set in another way.
func setFlagFromEnv(flag *Flag) error {
	if !flag.flag.Changed && flag.HasEnvarValue() {
		err := flag.flag.Value.Set(os.Getenv(flag.envVar))
		if err != nil {
			return fmt.Errorf("invalid value for $%s: %s", flag.envVar, err)
		}
		flag.flag.Changed = true
	}
	return nil
}

// Registerer allows others to register commands on it.
type Registerer interface {
	Command(cmd string, help string) *CommandClause
}

// visitFlags calls fn for every flag of the command that is visible in help texts.
func visitFlags(flagSet *pflag.FlagSet, fn func(*pflag.Flag)) {
	flagSet.VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			fn(f)
		}
	})
}
