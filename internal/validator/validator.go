// Package validator evaluates declarative field rules over request
// payloads and collects every violation into a field-keyed error map.
// Tag rules live on the request DTOs; database-backed rules (existence,
// uniqueness) live on BusinessValidator.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is one rule violation on one field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

// ValidationErrors collects violations across fields. A nil/empty slice
// means the payload validated.
type ValidationErrors []ValidationError

// FieldMap converts to the wire shape: field name -> ordered messages.
func (e ValidationErrors) FieldMap() map[string][]string {
	if len(e) == 0 {
		return nil
	}
	m := make(map[string][]string, len(e))
	for _, ve := range e {
		m[ve.Field] = append(m[ve.Field], ve.Message)
	}
	return m
}

// Validator wraps go-playground validation with the project's custom
// rules and Spanish messages.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator with every custom rule registered. Field names
// in results come from the json tag so they match the wire payload.
func New() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{validate: validate}
	v.registerRules()
	return v
}

// Validate runs every tag rule on s. All fields are evaluated; within one
// field, evaluation stops at the first failing rule.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return ToValidationErrors(err)
}

// svPhonePattern accepts a Salvadoran number before or after
// normalization: optional +503 prefix, 8 digits, optional dash.
var svPhonePattern = regexp.MustCompile(`^(\+503\s?)?\d{4}-?\d{4}$`)

// dataURLPattern accepts inline base64 image payloads, including
// '+'-suffixed subtypes such as image/svg+xml.
var dataURLPattern = regexp.MustCompile(`^data:[a-z]+/[a-z0-9.+-]+;base64,`)

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("sv_phone", func(fl validator.FieldLevel) bool {
		return svPhonePattern.MatchString(fl.Field().String())
	})

	v.validate.RegisterValidation("data_url", func(fl validator.FieldLevel) bool {
		return dataURLPattern.MatchString(fl.Field().String())
	})
}

// ToValidationErrors converts library errors into the project's shape
// with human-readable Spanish messages.
func ToValidationErrors(err error) ValidationErrors {
	var out ValidationErrors

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out = append(out, ValidationError{
			Field:   "_payload",
			Message: "El cuerpo de la solicitud no es válido",
			Rule:    "payload",
		})
		return out
	}

	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag(), fe.Param()),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

// fieldLabels maps wire field names to the Spanish labels used in
// messages, mirroring what the SPA displays.
var fieldLabels = map[string]string{
	"nombres":               "nombres",
	"apellidos":             "apellidos",
	"nombre":                "nombre",
	"email":                 "correo electrónico",
	"password":              "contraseña",
	"password_confirmation": "confirmación de contraseña",
	"telefono":              "teléfono",
	"id_carrera":            "carrera",
	"id_sector":             "sector",
	"direccion":             "dirección",
	"sitio_web":             "sitio web",
	"descripcion":           "descripción",
	"logo_url":              "logo",
	"verificada":            "verificada",
	"carnet":                "carnet",
	"titulo":                "título",
	"modalidad":             "modalidad",
	"cupos":                 "cupos",
	"estado":                "estado",
	"id_empresa":            "empresa",
}

func labelFor(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

// messageFor renders the message for one (field, rule) pair. The rule set
// is data: adding a rule means adding a case here and a tag on the DTO.
func messageFor(field, rule, param string) string {
	label := labelFor(field)
	switch rule {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", label)
	case "max":
		return fmt.Sprintf("El campo %s debe tener un máximo de %s caracteres", label, param)
	case "min":
		return fmt.Sprintf("El campo %s debe tener un mínimo de %s caracteres", label, param)
	case "email":
		return fmt.Sprintf("El campo %s debe ser una dirección de correo válida", label)
	case "eqfield":
		return "Las contraseñas no coinciden"
	case "sv_phone":
		return fmt.Sprintf("El campo %s no tiene un formato válido", label)
	case "data_url":
		return fmt.Sprintf("El campo %s debe ser una imagen codificada como data-url", label)
	case "oneof":
		return fmt.Sprintf("El campo %s tiene un valor no permitido", label)
	case "gt", "gte":
		return fmt.Sprintf("El campo %s debe ser mayor que cero", label)
	default:
		return fmt.Sprintf("El campo %s no es válido", label)
	}
}
