package form

import (
	"reflect"
	"strings"
)

const (
	tagName  = "form"
	required = "required"
)

// Missing returns the names of fields tagged `form:"required"` that hold a
// blank string (or a nil/blank *string). v must be a struct or a pointer to one.
func Missing(v interface{}) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var missing []string
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Tag.Get(tagName) != required {
			continue
		}
		if isBlank(rv.Field(i)) {
			missing = append(missing, field.Name)
		}
	}
	return missing
}

func isBlank(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Pointer:
		if v.IsNil() {
			return true
		}
		return isBlank(v.Elem())
	default:
		return v.IsZero()
	}
}
