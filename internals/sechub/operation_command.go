package sechub

import (
	"bufio"
	"context"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sechub/sechub-cli/internals/cli"
	"github.com/sechub/sechub-cli/internals/cli/progress"
	"github.com/sechub/sechub-cli/internals/cli/ui"
	"github.com/sechub/sechub-cli/internals/dispatch"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

const (
	fileInputPrefix  = "file://"
	progressInterval = 500 * time.Millisecond
	maxBatchLineSize = 8 * 1024 * 1024
)

// Logger writes messages about the execution of operations.
type Logger interface {
	dispatch.Logger
	Errorf(format string, args ...interface{})
}

// OperationCommand runs a single Security Hub operation with the parameter
// values given as flags, an input document or a batch of documents on stdin.
type OperationCommand struct {
	descriptor *dispatch.Descriptor
	io         ui.IO
	logger     Logger
	output     *Output

	params          []*paramValue
	selectExpr      string
	passThru        bool
	force           bool
	noAutoIteration bool
	nextToken       string
	input           string
	batch           bool
}

// NewOperationCommand creates a new OperationCommand for the given operation.
func NewOperationCommand(d *dispatch.Descriptor, io ui.IO, logger Logger, output *Output) *OperationCommand {
	return &OperationCommand{
		descriptor: d,
		io:         io,
		logger:     logger,
		output:     output,
	}
}

// Register registers the command and its flags on the provided Registerer.
func (cmd *OperationCommand) Register(r cli.Registerer) {
	d := cmd.descriptor
	clause := r.Command(d.CommandName(), d.Help)
	clause.HelpLong(d.Help + "\n\n" + describeSelection(d))
	clause.Cmd.Args = cobra.NoArgs

	flags := clause.Flags()
	for _, p := range d.Params {
		value := &paramValue{param: p}
		cmd.params = append(cmd.params, value)

		usage := p.Help
		if p.Required {
			usage += " Required."
		}
		flags.Var(value, p.Name, usage)
		for _, alias := range p.Aliases {
			flags.Var(value, alias, usage).NoEnvar().Hidden()
		}
	}

	flags.StringVarP(&cmd.selectExpr, "select", "s", "", "Select what to output: * for the whole response, a response field name, or ^param for the value of a parameter.")
	if d.PassThru != "" {
		flags.BoolVar(&cmd.passThru, "pass-thru", false, fmt.Sprintf("Output the value of --%s instead of the response.", d.PassThru))
	}
	if d.Mutating {
		flags.BoolVarP(&cmd.force, "force", "f", false, "Do not ask for confirmation.")
	}
	if d.Paginated {
		flags.BoolVar(&cmd.noAutoIteration, "no-auto-iteration", false, "Only retrieve the first page of results.")
		flags.StringVar(&cmd.nextToken, "next-token", "", "Continue listing from the given token.")
	}
	flags.StringVar(&cmd.input, "input", "", "A JSON or YAML document with parameter values, or "+fileInputPrefix+"path to read it from a file.")
	flags.BoolVar(&cmd.batch, "batch", false, "Run the operation once for every JSON document with parameter values read line by line from stdin.")

	clause.BindAction(cmd.Run)
}

// Run executes the operation.
func (cmd *OperationCommand) Run(ctx context.Context) error {
	inv, err := cmd.invocation()
	if err != nil {
		return err
	}
	if cmd.descriptor.Mutating && !cmd.force {
		if _, _, err := cmd.io.Prompts(); err != nil {
			return ErrCannotDoWithoutForce
		}
	}

	var batch []*dispatch.Invocation
	var lines []int
	if cmd.batch {
		batch, lines, err = cmd.readBatch(inv)
		if err != nil {
			return err
		}
	}

	out, err := cmd.output.Open()
	if err != nil {
		return err
	}

	var opts []dispatch.Option
	if printer := cmd.progressPrinter(); printer != nil {
		opts = append(opts, dispatch.WithProgress(printer))
	}
	runner := dispatch.NewRunner(out, promptConfirmer{io: cmd.io}, cmd.logger, opts...)

	if cmd.batch {
		err = cmd.runBatch(ctx, runner, batch, lines)
	} else {
		err = runner.Run(ctx, inv)
	}

	closeErr := out.Close()
	if err != nil {
		return err
	}
	return closeErr
}

// progressPrinter returns a printer that writes to the terminal while the
// records are piped elsewhere. It returns nil when the records go to the
// terminal themselves or when there is no terminal.
func (cmd *OperationCommand) progressPrinter() progress.Printer {
	if !cmd.io.IsOutputPiped() {
		return nil
	}
	_, w, err := cmd.io.Prompts()
	if err != nil {
		return nil
	}
	return progress.NewPrinter(w, progressInterval)
}

// invocation returns the invocation made from the flags and input document.
// Flags take precedence over the input document.
func (cmd *OperationCommand) invocation() (*dispatch.Invocation, error) {
	d := cmd.descriptor
	if cmd.selectExpr != "" && cmd.passThru {
		return nil, ErrFlagsConflict("--select and --pass-thru")
	}
	if cmd.batch && cmd.nextToken != "" {
		return nil, ErrFlagsConflict("--batch and --next-token")
	}

	inv := dispatch.NewInvocation(d)
	if cmd.input != "" {
		data, err := cmd.readInput()
		if err != nil {
			return nil, err
		}
		doc, err := parseDocument(data)
		if err != nil {
			return nil, ErrInvalidInputDocument(err)
		}
		err = inv.BindDocument(doc)
		if err != nil {
			return nil, err
		}
	}

	for _, value := range cmd.params {
		if value.value == nil {
			continue
		}
		err := inv.Bind(value.param.Name, value.value)
		if err != nil {
			return nil, err
		}
	}

	var err error
	switch {
	case cmd.passThru:
		inv.Selector, err = dispatch.ParseSelector("^"+d.PassThru, d)
	case cmd.selectExpr != "":
		inv.Selector, err = dispatch.ParseSelector(cmd.selectExpr, d)
	}
	if err != nil {
		return nil, err
	}

	inv.Force = cmd.force
	inv.NoAutoIterate = cmd.noAutoIteration
	inv.NextToken = cmd.nextToken
	return inv, nil
}

// readInput returns the input document given literally or read from a file.
func (cmd *OperationCommand) readInput() ([]byte, error) {
	if !strings.HasPrefix(cmd.input, fileInputPrefix) {
		return []byte(cmd.input), nil
	}

	path, err := homedir.Expand(strings.TrimPrefix(cmd.input, fileInputPrefix))
	if err != nil {
		return nil, ErrCannotReadInput(cmd.input, err)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, ErrCannotReadInput(path, err)
	}
	return data, nil
}

// readBatch reads one document per line from stdin and returns an
// invocation for each of them, together with the line they were read from.
// All lines are validated before anything runs.
func (cmd *OperationCommand) readBatch(base *dispatch.Invocation) ([]*dispatch.Invocation, []int, error) {
	if !cmd.io.IsInputPiped() {
		return nil, nil, ErrNoDataOnStdin
	}

	var invocations []*dispatch.Invocation
	var lines []int
	scanner := bufio.NewScanner(cmd.io.Input())
	scanner.Buffer(make([]byte, 64*1024), maxBatchLineSize)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		doc, err := parseDocument([]byte(line))
		if err != nil {
			return nil, nil, ErrInvalidBatchLine(n, err)
		}
		inv := base.Clone()
		err = inv.BindDocument(doc)
		if err != nil {
			return nil, nil, ErrInvalidBatchLine(n, err)
		}
		invocations = append(invocations, inv)
		lines = append(lines, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, ui.ErrReadInput(err)
	}
	if len(invocations) == 0 {
		return nil, nil, ErrNoDataOnStdin
	}
	return invocations, lines, nil
}

// runBatch runs every invocation, reporting the failed ones by line.
func (cmd *OperationCommand) runBatch(ctx context.Context, runner *dispatch.Runner, invocations []*dispatch.Invocation, lines []int) error {
	results := runner.RunAll(ctx, invocations)
	failed := dispatch.Failed(results)
	for _, result := range failed {
		cmd.logger.Errorf("line %d: %s", lines[result.Index], result.Err)
	}
	if len(failed) > 0 {
		return ErrBatchFailed(len(failed), len(results))
	}
	return nil
}

// parseDocument decodes a JSON or YAML object.
func parseDocument(data []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// describeSelection explains what the operation outputs by default.
func describeSelection(d *dispatch.Descriptor) string {
	var b strings.Builder
	switch d.Select {
	case dispatch.SelectNothing:
		b.WriteString("Outputs nothing on success.")
	case dispatch.SelectResponse:
		b.WriteString("Outputs the whole response.")
	default:
		fmt.Fprintf(&b, "Outputs the %s of the response.", d.Select)
	}
	if d.Paginated {
		b.WriteString(" Follows every page of results unless --no-auto-iteration is set.")
	}
	if d.Mutating {
		b.WriteString(" Asks for confirmation unless --force is set.")
	}
	return b.String()
}

// paramValue is the flag value of an operation parameter.
type paramValue struct {
	param dispatch.Param
	value interface{}
}

// Set parses the value. Repeating a list or map flag adds to its values.
func (v *paramValue) Set(raw string) error {
	parsed, err := dispatch.ParseValue(v.param.Type, raw)
	if err != nil {
		return err
	}

	switch values := parsed.(type) {
	case []string:
		if previous, ok := v.value.([]string); ok {
			parsed = append(previous, values...)
		}
	case map[string]string:
		if previous, ok := v.value.(map[string]string); ok {
			for k, val := range values {
				previous[k] = val
			}
			parsed = previous
		}
	}
	v.value = parsed
	return nil
}

func (v *paramValue) String() string {
	if v.value == nil {
		return ""
	}
	if values, ok := v.value.([]string); ok {
		return strings.Join(values, ",")
	}
	return fmt.Sprint(v.value)
}

func (v *paramValue) Type() string {
	return v.param.Type.String()
}

// IsBoolFlag allows boolean parameters to be set without a value.
func (v *paramValue) IsBoolFlag() bool {
	return v.param.Type == dispatch.TypeBool
}

