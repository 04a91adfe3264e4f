package dispatch

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Backend performs the remote call of an operation.
// It receives the request built by BuildRequest and returns the response.
type Backend func(ctx context.Context, input interface{}) (interface{}, error)

// Selection constants for Descriptor.Select.
const (
	SelectNothing  = ""
	SelectResponse = "*"
)

// DefaultCursor is the name of the request and response field that carries the pagination token.
const DefaultCursor = "NextToken"

// Descriptor is the static, data-only description of a single remote operation.
// The behavior of every operation is derived from its descriptor.
type Descriptor struct {
	// Name is the API name of the operation, e.g. AcceptAdministratorInvitation.
	Name string
	// Command is the command-line name of the operation. Defaults to the kebab-case Name.
	Command string
	Help    string
	Params  []Param

	// Select is the default selection: SelectNothing, SelectResponse or a response field.
	Select string

	// Paginated operations are repeated while the response carries a cursor.
	Paginated    bool
	InputCursor  string
	OutputCursor string

	// Mutating operations ask for confirmation unless forced.
	Mutating bool
	// Target names the parameters that identify the resource operated on.
	Target []string
	// PassThru names the parameter echoed by --pass-thru.
	PassThru string

	NewInput  func() interface{}
	NewOutput func() interface{}
	Call      Backend
}

// CommandName returns the command-line name of the operation.
func (d *Descriptor) CommandName() string {
	if d.Command != "" {
		return d.Command
	}
	return CommandName(d.Name)
}

// Param returns the parameter with the given name, field path or alias.
func (d *Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.matches(name) {
			return p, true
		}
	}
	return Param{}, false
}

func (d *Descriptor) inputCursor() string {
	if d.InputCursor == "" {
		return DefaultCursor
	}
	return d.InputCursor
}

func (d *Descriptor) outputCursor() string {
	if d.OutputCursor == "" {
		return DefaultCursor
	}
	return d.OutputCursor
}

// missingRequired returns the required parameters that are not bound or are bound to an empty value.
func (d *Descriptor) missingRequired(values map[string]interface{}) []Param {
	var missing []Param
	for _, p := range d.Params {
		if !p.Required {
			continue
		}
		if isEmpty(values[p.Name]) {
			missing = append(missing, p)
		}
	}
	return missing
}

// Validate checks that the descriptor is consistent with the request and
// response types it describes. A descriptor that does not validate is a
// programming error.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no name")
	}
	if d.NewInput == nil || d.NewOutput == nil || d.Call == nil {
		return fmt.Errorf("%s: request, response and backend are required", d.Name)
	}

	inputType := reflect.TypeOf(d.NewInput())
	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p.Name == "" || p.Field == "" {
			return fmt.Errorf("%s: parameter without name or field", d.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("%s: duplicate parameter %s", d.Name, p.Name)
		}
		seen[p.Name] = true
		t, err := fieldType(inputType, p.Field)
		if err != nil {
			return fmt.Errorf("%s: parameter %s: %s", d.Name, p.Name, err)
		}
		if err := assign(reflect.New(t).Elem(), sampleValue(p.Type, t)); err != nil {
			return fmt.Errorf("%s: parameter %s: a %s value cannot be set on %s", d.Name, p.Name, p.Type, t)
		}
	}

	if d.Select != SelectNothing && d.Select != SelectResponse {
		if _, ok := outputField(d.NewOutput(), d.Select); !ok {
			return fmt.Errorf("%s: response has no field %s", d.Name, d.Select)
		}
	}

	for _, name := range d.Target {
		if _, ok := d.Param(name); !ok {
			return fmt.Errorf("%s: target parameter %s does not exist", d.Name, name)
		}
	}
	if d.PassThru != "" {
		if _, ok := d.Param(d.PassThru); !ok {
			return fmt.Errorf("%s: pass-thru parameter %s does not exist", d.Name, d.PassThru)
		}
	}

	if d.Paginated {
		if _, err := fieldType(inputType, d.inputCursor()); err != nil {
			return fmt.Errorf("%s: input cursor: %s", d.Name, err)
		}
		if _, ok := outputField(d.NewOutput(), d.outputCursor()); !ok {
			return fmt.Errorf("%s: response has no cursor field %s", d.Name, d.outputCursor())
		}
	}
	return nil
}

// fieldType resolves a dotted field path on a (pointer to a) struct type.
func fieldType(t reflect.Type, path string) (reflect.Type, error) {
	for _, name := range strings.Split(path, ".") {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%s is not a structure", t)
		}
		field, ok := t.FieldByName(name)
		if !ok {
			return nil, fmt.Errorf("%s has no field %s", t, name)
		}
		t = field.Type
	}
	return t, nil
}

// outputField returns the field of a response with the given name, matched case-insensitively.
func outputField(output interface{}, name string) (reflect.Value, bool) {
	v := reflect.ValueOf(output)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	field := v.FieldByNameFunc(func(field string) bool {
		return strings.EqualFold(field, name)
	})
	return field, field.IsValid()
}
