// Package env populates configuration structs from environment variables.
//
// Fields are mapped with an `env:"VAR_NAME"` tag and may carry a
// `default:"value"` tag used when the variable is unset. An environment
// variable that is set to the empty string counts as set.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// Validator is implemented by config structs that need validation after
// parsing.
type Validator interface {
	Validate() error
}

// Parse fills the struct pointed to by v from the environment. Nested and
// embedded structs are parsed recursively; any struct implementing Validator
// is validated after its fields are set.
func Parse(v any) error {
	ptrVal := reflect.ValueOf(v)
	if ptrVal.Kind() != reflect.Pointer || ptrVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env.Parse: argument must be a pointer to struct, got %T", v)
	}

	if err := parseStruct(ptrVal.Elem()); err != nil {
		return err
	}

	if validator, ok := v.(Validator); ok {
		return validator.Validate()
	}
	return nil
}

func parseStruct(val reflect.Value) error {
	typ := val.Type()

	for i := range val.NumField() {
		field := val.Field(i)
		structField := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		// Recurse into nested structs, except time.Time which is scalar here.
		if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(time.Time{}) {
			if err := parseStruct(field); err != nil {
				return err
			}
			if field.CanAddr() {
				if validator, ok := field.Addr().Interface().(Validator); ok {
					if err := validator.Validate(); err != nil {
						return err
					}
				}
			}
			continue
		}

		envKey := structField.Tag.Get("env")
		if envKey == "" {
			continue
		}

		value, exists := os.LookupEnv(envKey)
		if !exists {
			defaultValue, hasDefault := structField.Tag.Lookup("default")
			if !hasDefault {
				continue
			}
			value = defaultValue
		}

		if err := setField(field, value); err != nil {
			return fmt.Errorf("env.Parse: parsing %s=%q for field %s: %w",
				envKey, value, structField.Name, err)
		}
	}

	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}

		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(i)
		return nil

	default:
		return fmt.Errorf("unsupported type: %s", field.Kind())
	}
}
