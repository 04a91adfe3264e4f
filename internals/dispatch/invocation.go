package dispatch

import (
	"sort"
	"strings"
)

// Invocation is a single request to perform an operation with a set of bound parameters.
type Invocation struct {
	Descriptor *Descriptor
	// Values holds the bound parameter values by parameter name.
	Values   map[string]interface{}
	Selector Selector
	// Force skips the confirmation of mutating operations.
	Force bool
	// NoAutoIterate performs a single call for paginated operations.
	NoAutoIterate bool
	// NextToken is the cursor to start from.
	NextToken string
}

// NewInvocation returns an invocation of the operation with nothing bound
// and the default selection of the operation.
func NewInvocation(d *Descriptor) *Invocation {
	selector, err := ParseSelector("", d)
	if err != nil {
		selector = Selector{Kind: SelectNone}
	}
	return &Invocation{
		Descriptor: d,
		Values:     make(map[string]interface{}),
		Selector:   selector,
	}
}

// Bind sets the value of a parameter. A nil value unbinds the parameter.
func (inv *Invocation) Bind(name string, value interface{}) error {
	p, ok := inv.Descriptor.Param(name)
	if !ok {
		return ErrUnknownParam(inv.Descriptor.CommandName(), name)
	}
	if value == nil {
		delete(inv.Values, p.Name)
		return nil
	}
	inv.Values[p.Name] = value
	return nil
}

// BindDocument binds every key of a decoded JSON or YAML document to the
// parameter it names. Keys can be parameter names, field paths or aliases.
func (inv *Invocation) BindDocument(doc map[string]interface{}) error {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p, ok := inv.Descriptor.Param(key)
		if !ok {
			return ErrUnknownParam(inv.Descriptor.CommandName(), key)
		}
		value, err := Coerce(p.Type, doc[key])
		if err != nil {
			return ErrInvalidParamValue(p.Name, err)
		}
		if err := inv.Bind(p.Name, value); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a copy of the invocation that can be bound independently.
func (inv *Invocation) Clone() *Invocation {
	clone := *inv
	clone.Values = make(map[string]interface{}, len(inv.Values))
	for k, v := range inv.Values {
		clone.Values[k] = v
	}
	return &clone
}

// Target returns a description of the resource the invocation operates on,
// made from the values bound to the target parameters of the operation.
func (inv *Invocation) Target() string {
	var parts []string
	for _, name := range inv.Descriptor.Target {
		p, ok := inv.Descriptor.Param(name)
		if !ok {
			continue
		}
		value, ok := inv.Values[p.Name]
		if !ok || isEmpty(value) {
			continue
		}
		parts = append(parts, formatValue(value))
	}
	return strings.Join(parts, ", ")
}
