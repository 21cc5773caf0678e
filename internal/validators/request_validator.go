package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-post-hub/models"
	"github.com/go-playground/validator/v10"
)

// postTagsRule is applied to a present tag list of a post update.
const postTagsRule = "max=50,dive,max=64"

// RequestValidator validates tagged request structs.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks obj against its `validate` tags. When fields are given,
// only those Go struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err != nil {
		return v.wrap(err)
	}

	switch update := obj.(type) {
	case models.PostUpdate:
		return v.validatePostTags(ctx, update.Tags)
	case *models.PostUpdate:
		return v.validatePostTags(ctx, update.Tags)
	}

	return nil
}

func (v *RequestValidator) validatePostTags(ctx context.Context, tags *[]string) error {
	if tags == nil {
		return nil
	}
	if err := v.validate.VarCtx(ctx, *tags, postTagsRule); err != nil {
		return fmt.Errorf("%w: tags: %s", ErrInvalidInput, describe(err))
	}
	return nil
}

func (v *RequestValidator) wrap(err error) error {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(msgs, "; ")
}
