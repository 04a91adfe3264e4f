package dispatch

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// BuildRequest creates the request for an operation from the bound parameter values.
// Only fields of bound parameters are set. A nested structure is only
// allocated when at least one of its fields is bound, so a group of
// parameters that is entirely unbound is omitted from the request.
func BuildRequest(d *Descriptor, values map[string]interface{}) (interface{}, error) {
	input := d.NewInput()
	for _, p := range d.Params {
		value, ok := values[p.Name]
		if !ok || value == nil {
			continue
		}
		if err := setField(reflect.ValueOf(input), p.Field, value); err != nil {
			return nil, ErrInvalidRequestField(p.Field, err)
		}
	}
	return input, nil
}

// setField assigns value to the field at the dotted path, allocating
// intermediate structures on the way.
func setField(v reflect.Value, path string, value interface{}) error {
	names := strings.Split(path, ".")
	for i, name := range names {
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return fmt.Errorf("%s is not a structure", strings.Join(names[:i], "."))
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return fmt.Errorf("unknown field %s", name)
		}
	}
	return assign(v, value)
}

var timeType = reflect.TypeOf(time.Time{})

// assign stores value in field, converting between the parameter value
// types and the pointer based types of the request structures.
func assign(field reflect.Value, value interface{}) error {
	if doc, ok := value.(Document); ok {
		target := reflect.New(field.Type())
		if err := json.Unmarshal(doc, target.Interface()); err != nil {
			return err
		}
		field.Set(target.Elem())
		return nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}

	switch field.Kind() {
	case reflect.Ptr:
		elem := reflect.New(field.Type().Elem())
		if err := assign(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	case reflect.Slice:
		if v.Kind() != reflect.Slice {
			break
		}
		slice := reflect.MakeSlice(field.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			if err := assign(slice.Index(i), v.Index(i).Interface()); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	case reflect.Map:
		if v.Kind() != reflect.Map || field.Type().Key().Kind() != reflect.String {
			break
		}
		m := reflect.MakeMapWithSize(field.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			elem := reflect.New(field.Type().Elem()).Elem()
			if err := assign(elem, iter.Value().Interface()); err != nil {
				return err
			}
			m.SetMapIndex(iter.Key().Convert(field.Type().Key()), elem)
		}
		field.Set(m)
		return nil
	default:
		if field.Type() != timeType && v.Kind() == field.Kind() && v.Type().ConvertibleTo(field.Type()) {
			field.Set(v.Convert(field.Type()))
			return nil
		}
	}
	return fmt.Errorf("cannot use %T as %s", value, field.Type())
}
