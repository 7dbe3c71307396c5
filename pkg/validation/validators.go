package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// assignable user roles; empty clears a role
var userRoles = map[string]bool{
	"":      true,
	"admin": true,
	"host":  true,
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("user_role", ValidUserRole)
	v.RegisterTagNameFunc(jsonFieldName)
}

// jsonFieldName reports fields by their JSON key in validation errors.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidUserRole accepts only roles the role gates understand.
func ValidUserRole(fl validator.FieldLevel) bool {
	return userRoles[fl.Field().String()]
}
