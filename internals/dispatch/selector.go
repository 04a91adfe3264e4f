package dispatch

import (
	"reflect"
	"strings"
)

// SelectorKind distinguishes the variants of a Selector.
type SelectorKind int

// Selector kinds.
const (
	SelectNone SelectorKind = iota
	SelectWholeResponse
	SelectField
	SelectEchoInput
)

// Selector determines what an invocation emits after a successful call.
type Selector struct {
	Kind SelectorKind
	// Name is the response field for SelectField and the parameter for SelectEchoInput.
	Name string
}

// WholeResponse selects the entire response.
func WholeResponse() Selector {
	return Selector{Kind: SelectWholeResponse}
}

// NamedField selects a single field of the response.
func NamedField(name string) Selector {
	return Selector{Kind: SelectField, Name: name}
}

// EchoInput selects the value bound to an input parameter.
func EchoInput(param string) Selector {
	return Selector{Kind: SelectEchoInput, Name: param}
}

// String returns the expression that parses into the selector.
func (s Selector) String() string {
	switch s.Kind {
	case SelectWholeResponse:
		return "*"
	case SelectEchoInput:
		return "^" + s.Name
	case SelectField:
		return s.Name
	default:
		return ""
	}
}

// ParseSelector parses a selection expression for an operation:
//   *       selects the whole response
//   ^Param  selects the value bound to Param
//   Field   selects a field of the response
// An empty expression results in the operation's default selection.
func ParseSelector(expr string, d *Descriptor) (Selector, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = d.Select
	}

	switch {
	case expr == SelectNothing:
		return Selector{Kind: SelectNone}, nil
	case expr == SelectResponse:
		return WholeResponse(), nil
	case strings.HasPrefix(expr, "^"):
		name := strings.TrimPrefix(expr, "^")
		p, ok := d.Param(name)
		if !ok {
			return Selector{}, ErrUnknownEchoParam(name, d.Name)
		}
		return EchoInput(p.Name), nil
	default:
		name, ok := responseFieldName(d.NewOutput(), expr)
		if !ok {
			return Selector{}, ErrUnknownSelectorField(d.Name, expr)
		}
		return NamedField(name), nil
	}
}

// responseFieldName returns the exact name of a response field matched case-insensitively.
func responseFieldName(output interface{}, name string) (string, bool) {
	t := reflect.TypeOf(output)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", false
	}
	field, ok := t.FieldByNameFunc(func(field string) bool {
		return strings.EqualFold(field, name)
	})
	if !ok {
		return "", false
	}
	return field.Name, true
}

// project returns the records to emit for a response.
// A selected list is emitted element by element and an unset field emits nothing.
func (s Selector) project(output interface{}) []interface{} {
	switch s.Kind {
	case SelectWholeResponse:
		if output == nil {
			return nil
		}
		return []interface{}{output}
	case SelectField:
		field, ok := outputField(output, s.Name)
		if !ok {
			return nil
		}
		return records(field)
	default:
		return nil
	}
}

func records(v reflect.Value) []interface{} {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		if v.Kind() == reflect.Ptr && v.Elem().Kind() != reflect.Struct {
			return []interface{}{v.Elem().Interface()}
		}
		return []interface{}{v.Interface()}
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		out := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, records(v.Index(i))...)
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		return []interface{}{v.Interface()}
	default:
		return []interface{}{v.Interface()}
	}
}
