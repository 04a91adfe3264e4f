package sechub

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"bitbucket.org/zombiezen/cardcpx/natsort"
	"github.com/sechub/sechub-cli/internals/catalog"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/ui"
	"github.com/sechub/sechub-cli/internals/dispatch"
)

// OperationsCommand handles listing and describing the available operations.
type OperationsCommand struct {
	io      ui.IO
	catalog *catalog.Catalog
	output  *Output
}

// NewOperationsCommand creates a new OperationsCommand.
func NewOperationsCommand(io ui.IO, catalog *catalog.Catalog, output *Output) *OperationsCommand {
	return &OperationsCommand{
		io:      io,
		catalog: catalog,
		output:  output,
	}
}

// Register registers the command and its sub-commands on the provided Registerer.
func (cmd *OperationsCommand) Register(r cli.Registerer) {
	clause := r.Command("operations", "List and describe the available Security Hub operations.")
	clause.Alias("ops")
	NewOperationsLsCommand(cmd.io, cmd.catalog, cmd.output).Register(clause)
	NewOperationsDescribeCommand(cmd.io, cmd.catalog, cmd.output).Register(clause)
}

// OperationsLsCommand lists the available operations.
type OperationsLsCommand struct {
	io            ui.IO
	catalog       *catalog.Catalog
	output        *Output
	quiet         bool
	mutating      bool
	paginated     bool
	terminalWidth func() int
}

// NewOperationsLsCommand creates a new OperationsLsCommand.
func NewOperationsLsCommand(io ui.IO, catalog *catalog.Catalog, output *Output) *OperationsLsCommand {
	return &OperationsLsCommand{
		io:      io,
		catalog: catalog,
		output:  output,
		terminalWidth: func() int {
			return terminalWidth(int(os.Stdout.Fd()))
		},
	}
}

// Register registers the command and its flags on the provided Registerer.
func (cmd *OperationsLsCommand) Register(r cli.Registerer) {
	clause := r.Command("ls", "List all operations.")
	clause.Alias("list")
	clause.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false, "Only print command names.")
	clause.Flags().BoolVar(&cmd.mutating, "mutating", false, "Only list operations that change resources.")
	clause.Flags().BoolVar(&cmd.paginated, "paginated", false, "Only list operations that return pages of results.")

	clause.BindAction(func(context.Context) error {
		return cmd.Run()
	})
}

// Run lists the operations, naturally sorted by command name.
func (cmd *OperationsLsCommand) Run() error {
	byCommand := make(map[string]*dispatch.Descriptor)
	var names []string
	for _, d := range cmd.catalog.All() {
		if cmd.mutating && !d.Mutating || cmd.paginated && !d.Paginated {
			continue
		}
		byCommand[d.CommandName()] = d
		names = append(names, d.CommandName())
	}
	natsort.Strings(names)

	columns := []tableColumn{
		{name: "command", maxWidth: 48},
		{name: "kind", maxWidth: 5},
		{name: "description"},
	}
	formatter := newListFormatter(cmd.io.Output(), cmd.output.format, cmd.quiet, cmd.terminalWidth(), columns)
	for _, name := range names {
		d := byCommand[name]
		err := formatter.Write([]string{name, operationKind(d), d.Help})
		if err != nil {
			return err
		}
	}
	return nil
}

// operationKind returns whether an operation writes, lists or reads.
func operationKind(d *dispatch.Descriptor) string {
	switch {
	case d.Mutating:
		return "write"
	case d.Paginated:
		return "list"
	default:
		return "read"
	}
}

// OperationsDescribeCommand shows the parameters and output of an operation.
type OperationsDescribeCommand struct {
	io      ui.IO
	catalog *catalog.Catalog
	output  *Output
	name    cli.StringValue
}

// NewOperationsDescribeCommand creates a new OperationsDescribeCommand.
func NewOperationsDescribeCommand(io ui.IO, catalog *catalog.Catalog, output *Output) *OperationsDescribeCommand {
	return &OperationsDescribeCommand{
		io:      io,
		catalog: catalog,
		output:  output,
	}
}

// Register registers the command and its arguments on the provided Registerer.
func (cmd *OperationsDescribeCommand) Register(r cli.Registerer) {
	clause := r.Command("describe", "Show the parameters and output of an operation.")
	clause.Alias("inspect")
	clause.BindArguments([]cli.Argument{
		{Value: &cmd.name, Name: "operation", Required: true, Description: "The command or API name of the operation, e.g. get-findings or GetFindings."},
	})

	clause.BindAction(func(context.Context) error {
		return cmd.Run()
	})
}

// operationDescription is the JSON representation of a described operation.
type operationDescription struct {
	Operation  string                 `json:"Operation"`
	Command    string                 `json:"Command"`
	Help       string                 `json:"Help"`
	Output     string                 `json:"Output"`
	Mutating   bool                   `json:"Mutating"`
	Paginated  bool                   `json:"Paginated"`
	PassThru   string                 `json:"PassThru,omitempty"`
	Parameters []parameterDescription `json:"Parameters"`
}

type parameterDescription struct {
	Name     string   `json:"Name"`
	Field    string   `json:"Field"`
	Type     string   `json:"Type"`
	Required bool     `json:"Required"`
	Aliases  []string `json:"Aliases,omitempty"`
	Help     string   `json:"Help"`
}

// Run prints the description of the operation.
func (cmd *OperationsDescribeCommand) Run() error {
	d, ok := cmd.catalog.Lookup(cmd.name.Param)
	if !ok {
		return ErrUnknownOperation(cmd.name.Param)
	}

	description := describe(d)
	if cmd.output.format == formatJSON {
		out, err := json.MarshalIndent(description, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.io.Output(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.io.Output(), 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "Operation:\t%s\n", description.Operation)
	fmt.Fprintf(w, "Command:\t%s %s\n", ApplicationName, description.Command)
	fmt.Fprintf(w, "Description:\t%s\n", description.Help)
	fmt.Fprintf(w, "Output:\t%s\n", description.Output)
	fmt.Fprintf(w, "Mutating:\t%s\n", yesNo(description.Mutating))
	fmt.Fprintf(w, "Paginated:\t%s\n", yesNo(description.Paginated))
	if description.PassThru != "" {
		fmt.Fprintf(w, "Pass-through:\t--%s\n", description.PassThru)
	}
	err := w.Flush()
	if err != nil {
		return err
	}

	if len(description.Parameters) == 0 {
		return nil
	}
	fmt.Fprintln(cmd.io.Output())
	w = tabwriter.NewWriter(cmd.io.Output(), 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", "FLAG", "TYPE", "REQUIRED", "FIELD")
	for _, p := range description.Parameters {
		flag := "--" + p.Name
		if len(p.Aliases) > 0 {
			flag += " (--" + strings.Join(p.Aliases, ", --") + ")"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", flag, p.Type, yesNo(p.Required), p.Field)
	}
	return w.Flush()
}

func describe(d *dispatch.Descriptor) operationDescription {
	output := d.Select
	switch output {
	case dispatch.SelectNothing:
		output = "nothing"
	case dispatch.SelectResponse:
		output = "the whole response"
	}

	description := operationDescription{
		Operation:  d.Name,
		Command:    d.CommandName(),
		Help:       d.Help,
		Output:     output,
		Mutating:   d.Mutating,
		Paginated:  d.Paginated,
		PassThru:   d.PassThru,
		Parameters: make([]parameterDescription, len(d.Params)),
	}
	for i, p := range d.Params {
		description.Parameters[i] = parameterDescription{
			Name:     p.Name,
			Field:    p.Field,
			Type:     p.Type.String(),
			Required: p.Required,
			Aliases:  p.Aliases,
			Help:     p.Help,
		}
	}
	return description
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
