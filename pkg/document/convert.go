package document

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/l7mp/dquery/pkg/util"
)

// IsList reports whether d is a slice or an array.
func IsList(d any) bool {
	if d == nil {
		return false
	}
	dv := reflect.ValueOf(d)
	return dv.Kind() == reflect.Slice || dv.Kind() == reflect.Array
}

// AsList converts any slice into a []any.
func AsList(d any) ([]any, error) {
	if ret, ok := d.([]any); ok {
		return ret, nil
	}

	if !IsList(d) {
		return nil, fmt.Errorf("argument is not a list: %s", util.Stringify(d))
	}

	dv := reflect.ValueOf(d)
	ret := make([]any, dv.Len())
	for i := 0; i < dv.Len(); i++ {
		ret[i] = dv.Index(i).Interface()
	}
	return ret, nil
}

// AsBool converts d into a boolean.
func AsBool(d any) (bool, error) {
	if d == nil {
		return false, errors.New("argument is nil")
	}

	if reflect.ValueOf(d).Kind() == reflect.Bool {
		return reflect.ValueOf(d).Bool(), nil
	}
	return false, fmt.Errorf("argument is not a boolean: %s", util.Stringify(d))
}

// AsString converts d into a string. Integers are rendered in decimal.
func AsString(d any) (string, error) {
	if d == nil {
		return "", errors.New("argument is nil")
	}

	switch reflect.ValueOf(d).Kind() { //nolint:exhaustive
	case reflect.String:
		return reflect.ValueOf(d).String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(reflect.ValueOf(d).Int(), 10), nil
	}

	return "", fmt.Errorf("argument is not a string: %s", util.Stringify(d))
}

// AsInt converts d into an int64. Floating point values are rejected.
func AsInt(d any) (int64, error) {
	if d == nil {
		return int64(0), errors.New("argument is nil")
	}

	switch reflect.ValueOf(d).Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.ValueOf(d).Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(reflect.ValueOf(d).Uint()), nil //nolint:gosec
	}

	return 0, fmt.Errorf("argument is not an int: %s", util.Stringify(d))
}

// AsFloat converts any numeric value into a float64.
func AsFloat(d any) (float64, error) {
	if d == nil {
		return 0.0, errors.New("argument is nil")
	}

	switch reflect.ValueOf(d).Kind() { //nolint:exhaustive
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(d).Float(), nil
	case reflect.String, reflect.Bool:
		return 0.0, fmt.Errorf("argument is not a float: %s", util.Stringify(d))
	}

	if reflect.ValueOf(d).CanConvert(reflect.TypeOf(0.0)) {
		return reflect.ValueOf(d).Convert(reflect.TypeOf(0.0)).Float(), nil
	}

	return 0.0, fmt.Errorf("argument is not a float: %s", util.Stringify(d))
}

// AsIntOrFloat returns d either as an int (kind Int64) or as a float (kind Float64).
func AsIntOrFloat(d any) (int64, float64, reflect.Kind, error) {
	if i, err := AsInt(d); err == nil {
		return i, 0.0, reflect.Int64, nil
	}

	if f, err := AsFloat(d); err == nil {
		return 0, f, reflect.Float64, nil
	}

	return 0, 0.0, reflect.Invalid, fmt.Errorf("argument is not an int or float: %s", util.Stringify(d))
}

// AsIntOrFloatList converts a list into an int list if all elements are integers, or into a float
// list if all elements are numeric.
func AsIntOrFloatList(d any) ([]int64, []float64, reflect.Kind, error) {
	list, err := AsList(d)
	if err != nil {
		return nil, nil, reflect.Invalid, err
	}

	is := make([]int64, 0, len(list))
	for _, v := range list {
		i, err := AsInt(v)
		if err != nil {
			break
		}
		is = append(is, i)
	}
	if len(is) == len(list) {
		return is, []float64{}, reflect.Int64, nil
	}

	fs := make([]float64, 0, len(list))
	for _, v := range list {
		f, err := AsFloat(v)
		if err != nil {
			return nil, nil, reflect.Invalid,
				fmt.Errorf("incompatible elems in numeric list: %s", util.Stringify(d))
		}
		fs = append(fs, f)
	}

	return []int64{}, fs, reflect.Float64, nil
}

// AsBinaryIntOrFloatList is AsIntOrFloatList for lists of exactly two elements.
func AsBinaryIntOrFloatList(d any) ([]int64, []float64, reflect.Kind, error) {
	is, fs, kind, err := AsIntOrFloatList(d)
	if err != nil {
		return is, fs, kind, err
	}

	if (kind == reflect.Int64 && len(is) != 2) || (kind == reflect.Float64 && len(fs) != 2) {
		return is, fs, kind, fmt.Errorf("invalid number of arguments in binary numeric list: %s",
			util.Stringify(d))
	}

	return is, fs, kind, nil
}

// AsBoolList converts a list of booleans.
func AsBoolList(d any) ([]bool, error) {
	list, err := AsList(d)
	if err != nil {
		return nil, err
	}

	ret := make([]bool, 0, len(list))
	for _, v := range list {
		b, err := AsBool(v)
		if err != nil {
			return nil, err
		}
		ret = append(ret, b)
	}
	return ret, nil
}

// AsStringList converts a list of strings.
func AsStringList(d any) ([]string, error) {
	if ret, ok := d.([]string); ok {
		return ret, nil
	}

	list, err := AsList(d)
	if err != nil {
		return nil, err
	}

	ret := make([]string, 0, len(list))
	for _, v := range list {
		s, err := AsString(v)
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	return ret, nil
}

// AsMap converts d into a document.
func AsMap(d any) (Document, error) {
	ret, ok := d.(map[string]any)
	if !ok || ret == nil {
		return nil, fmt.Errorf("argument is not an object: %s", util.Stringify(d))
	}

	return ret, nil
}

// AsCollection converts a list of documents.
func AsCollection(d any) (Collection, error) {
	if ret, ok := d.([]map[string]any); ok {
		return ret, nil
	}

	list, err := AsList(d)
	if err != nil {
		return nil, err
	}

	ret := make(Collection, 0, len(list))
	for _, v := range list {
		m, err := AsMap(v)
		if err != nil {
			return nil, err
		}
		ret = append(ret, m)
	}
	return ret, nil
}
