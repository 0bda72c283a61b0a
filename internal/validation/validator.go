package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

const notBlankTag = "notblank"

// Violation describes single invalid field
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError holds all violations found in payload
type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	msgs := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "\n")
}

// Violation appends violation to error
func (e *PayloadError) Violation(v Violation) {
	e.violations = append(e.violations, v)
}

// Violations returns copy of violations
func (e *PayloadError) Violations() []Violation {
	return append([]Violation(nil), e.violations...)
}

// ViolationsByField returns message per field
func (e *PayloadError) ViolationsByField() map[string]string {
	byField := make(map[string]string, len(e.violations))
	for _, v := range e.violations {
		byField[v.Field] = v.Message
	}
	return byField
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

// Validator validates structs and converts validation errors to PayloadError
type Validator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// New builds Validator with english translations, json field names and notblank rule registered
func New() (*Validator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	if err := v.RegisterValidation(notBlankTag, validators.NotBlank); err != nil {
		return nil, fmt.Errorf("failed to register %s validation - %w", notBlankTag, err)
	}

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	err := v.RegisterTranslation(notBlankTag, trans, func(ut ut.Translator) error {
		return ut.Add(notBlankTag, "{0} must not be blank", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(notBlankTag, fe.Field())
		return t
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register %s translation - %w", notBlankTag, err)
	}

	return &Validator{validator: v, translator: trans}, nil
}

// Validate validates struct, returns *PayloadError if struct is invalid
func (v *Validator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}
	return err
}

func (v *Validator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]Violation, 0)}
	for _, e := range ve {
		pldErr.Violation(Violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// EchoValidator adapts Validator to echo.Validator
type EchoValidator struct {
	validator *Validator
}

// Echo builds echo validator
func Echo(v *Validator) *EchoValidator {
	return &EchoValidator{validator: v}
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Validate(i)
	if err == nil {
		return nil
	}

	var pldErr *PayloadError
	if errors.As(err, &pldErr) {
		return pldErr
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
