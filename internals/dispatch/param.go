package dispatch

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ParamType defines the kind of value a parameter accepts.
type ParamType int

// Parameter types.
const (
	TypeString ParamType = iota
	TypeInt
	TypeFloat
	TypeBool
	TypeTime
	TypeStringList
	TypeStringMap
	TypeDocument
)

var paramTypeNames = map[ParamType]string{
	TypeString:     "string",
	TypeInt:        "int",
	TypeFloat:      "float",
	TypeBool:       "bool",
	TypeTime:       "timestamp",
	TypeStringList: "list",
	TypeStringMap:  "map",
	TypeDocument:   "json",
}

func (t ParamType) String() string {
	name, ok := paramTypeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}

// Document is a JSON encoded value for a parameter with a structured type.
// It is decoded into the type of the request field it is copied to.
type Document []byte

// String returns the JSON text of the document.
func (d Document) String() string {
	return string(d)
}

// Param describes one named input parameter of an operation.
type Param struct {
	// Name is the command-line name of the parameter, e.g. invitation-id.
	Name string
	// Field is the dotted path of the request field, e.g. Note.Text.
	Field    string
	Type     ParamType
	Required bool
	Aliases  []string
	Help     string
}

// matches returns true when the given name refers to this parameter,
// either by its name, its field path or one of its aliases.
func (p Param) matches(name string) bool {
	if strings.EqualFold(p.Name, name) || strings.EqualFold(p.Field, name) {
		return true
	}
	for _, alias := range p.Aliases {
		if strings.EqualFold(alias, name) {
			return true
		}
	}
	return false
}

// ParseValue converts the textual representation of a parameter value,
// as given on the command-line, into the Go value for the parameter type.
//
// Lists are comma separated (a,b,c) and maps are comma separated key=value pairs.
func ParseValue(t ParamType, raw string) (interface{}, error) {
	switch t {
	case TypeString:
		return raw, nil
	case TypeInt:
		return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	case TypeFloat:
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	case TypeBool:
		return strconv.ParseBool(strings.TrimSpace(raw))
	case TypeTime:
		return time.Parse(time.RFC3339, strings.TrimSpace(raw))
	case TypeStringList:
		return splitList(raw), nil
	case TypeStringMap:
		return parseMap(raw)
	case TypeDocument:
		if !json.Valid([]byte(raw)) {
			return nil, fmt.Errorf("not a valid JSON document")
		}
		return Document(raw), nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %s", t)
	}
}

func splitList(raw string) []string {
	var values []string
	for _, value := range strings.Split(raw, ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}
	return values
}

func parseMap(raw string) (map[string]string, error) {
	values := make(map[string]string)
	for _, pair := range splitList(raw) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		values[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return values, nil
}

// Coerce converts a value decoded from a JSON or YAML document into the
// Go value for the parameter type. A nil value stays nil, which leaves
// the parameter unbound.
func Coerce(t ParamType, raw interface{}) (interface{}, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok && t != TypeString && t != TypeDocument {
		return ParseValue(t, s)
	}

	switch t {
	case TypeString:
		s, err := documentString(raw)
		if err != nil {
			return nil, err
		}
		return s, nil
	case TypeInt:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("%v is not a whole number", v)
			}
			return int64(v), nil
		}
	case TypeFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case TypeBool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case TypeTime:
		if v, ok := raw.(time.Time); ok {
			return v, nil
		}
	case TypeStringList:
		if items, ok := raw.([]interface{}); ok {
			values := make([]string, 0, len(items))
			for _, item := range items {
				value, err := documentString(item)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
			return values, nil
		}
	case TypeStringMap:
		doc, err := normalizeDocument(raw)
		if err != nil {
			return nil, err
		}
		if m, ok := doc.(map[string]interface{}); ok {
			values := make(map[string]string, len(m))
			for k, v := range m {
				value, err := documentString(v)
				if err != nil {
					return nil, err
				}
				values[k] = value
			}
			return values, nil
		}
	case TypeDocument:
		if s, ok := raw.(string); ok {
			return ParseValue(t, s)
		}
		doc, err := normalizeDocument(raw)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return Document(data), nil
	}
	return nil, fmt.Errorf("cannot use %T as %s", raw, t)
}

// documentString returns a string value of a decoded document. Unquoted
// YAML scalars such as 012345678901 or yes decode to numbers or booleans that
// no longer read as written, so only strings are accepted.
func documentString(raw interface{}) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T %v: quote the value", raw, raw)
	}
	return s, nil
}

// normalizeDocument converts the map[interface{}]interface{} values produced
// by YAML decoding into map[string]interface{} so they can be JSON encoded.
func normalizeDocument(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, value := range v {
			s, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("document keys must be strings, got %T", key)
			}
			normalized, err := normalizeDocument(value)
			if err != nil {
				return nil, err
			}
			m[s] = normalized
		}
		return m, nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, value := range v {
			normalized, err := normalizeDocument(value)
			if err != nil {
				return nil, err
			}
			m[key] = normalized
		}
		return m, nil
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, value := range v {
			normalized, err := normalizeDocument(value)
			if err != nil {
				return nil, err
			}
			items[i] = normalized
		}
		return items, nil
	default:
		return raw, nil
	}
}

// sampleValue returns a value of the parameter type that fits a request
// field of type t when the parameter is declared correctly.
func sampleValue(pt ParamType, t reflect.Type) interface{} {
	switch pt {
	case TypeInt:
		return int64(1)
	case TypeFloat:
		return float64(1)
	case TypeBool:
		return true
	case TypeTime:
		return time.Time{}
	case TypeStringList:
		return []string{"sample"}
	case TypeStringMap:
		return map[string]string{"sample": "sample"}
	case TypeDocument:
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() == reflect.Slice {
			return Document("[]")
		}
		return Document("{}")
	default:
		return "sample"
	}
}

// isEmpty returns true for values that are bound but carry no data.
func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(v) == 0
	case map[string]string:
		return len(v) == 0
	case Document:
		trimmed := strings.TrimSpace(string(v))
		return trimmed == "" || trimmed == "null"
	default:
		return false
	}
}

// formatValue returns a short human readable representation of a bound value.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ", ")
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + v[k]
		}
		return strings.Join(pairs, ", ")
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
