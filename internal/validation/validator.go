// Package validation validates typed request schemas with
// go-playground/validator v10.
//
// It keeps a single validator instance (the validator caches struct
// metadata), reports fields by their JSON names and understands
// models.Field: an absent or null Field counts as empty, so `required`
// fails and `omitempty` skips it. A present "" or 0 satisfies `required`.
//
//	type EquipoCreate struct {
//	    EtiquetaActivo models.Field[string] `json:"etiqueta_activo" validate:"required"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    // *common.MissingFieldsError or a common.ErrorValidation *common.Error
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the singleton validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		validate.RegisterCustomTypeFunc(fieldValue,
			models.Field[string]{}, models.Field[int64]{}, models.Field[int]{})
	})

	return validate
}

// fieldValue unwraps models.Field for the validator: nil when the key was
// absent or null, otherwise a pointer to the value, so `required` checks
// presence rather than a non-zero value.
func fieldValue(v reflect.Value) any {
	set := v.FieldByName("Set").Bool()
	null := v.FieldByName("Null").Bool()
	if !set || null {
		return nil
	}
	val := v.FieldByName("Value")
	p := reflect.New(val.Type())
	p.Elem().Set(val)
	return p.Interface()
}

// ValidateStruct validates s. Failed `required` rules are collected into a
// *common.MissingFieldsError naming every missing key; any other failure
// becomes a common.ErrorValidation error with a readable message.
func ValidateStruct(s any) error {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return common.Errorf(common.ErrorValidation, err.Error())
	}

	var missing []string
	var messages []string
	for _, fe := range validationErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		messages = append(messages, translateError(fe))
	}

	if len(missing) > 0 {
		return &common.MissingFieldsError{Fields: missing}
	}
	return common.Errorf(common.ErrorValidation, strings.Join(messages, "; "))
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s debe ser uno de: %s",
	"gte":   "%s debe ser mayor o igual a %s",
	"lte":   "%s debe ser menor o igual a %s",
	"min":   "%s debe ser al menos %s",
	"max":   "%s debe ser como máximo %s",
}

func translateError(fe validator.FieldError) string {
	if template, ok := errorMessageWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(template, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s no es válido (%s)", fe.Field(), fe.Tag())
}
