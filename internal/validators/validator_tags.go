package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// TagValidator validates structs, and slices of structs, against their
// `validate` tags.
type TagValidator struct {
	validate *validator.Validate
}

func NewTagValidator() Validator {
	return &TagValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements [Validator]. Slices are checked element by element.
func (v *TagValidator) Validate(ctx context.Context, obj any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		value = value.Elem()
	}

	var err error
	switch value.Kind() {
	case reflect.Struct:
		err = v.validate.StructCtx(ctx, value.Interface())
	case reflect.Slice, reflect.Array:
		err = v.validate.VarCtx(ctx, value.Interface(), "dive")
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return err
}
