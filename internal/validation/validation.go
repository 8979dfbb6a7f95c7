// Package validation checks request payloads against their struct tags and turns
// failures into field-level errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "portfolio/internal/errors"
)

// MinYear is the oldest accepted certification year.
const MinYear = 1900

var yearMonthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Validator wraps validator.Validate with the project's custom rules.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used by the yearrange rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New builds a Validator. projectCategories lists the accepted project category ids.
func New(projectCategories []string, opts ...Option) *Validator {
	v := &Validator{validate: validator.New(), now: time.Now}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.validate.RegisterValidation("yearrange", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= MinYear && year <= int64(v.now().Year())
	})
	_ = v.validate.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		return yearMonthPattern.MatchString(fl.Field().String())
	})
	allowed := make(map[string]struct{}, len(projectCategories))
	for _, id := range projectCategories {
		allowed[id] = struct{}{}
	}
	_ = v.validate.RegisterValidation("projectcategory", func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})

	return v
}

// Struct validates s. It returns nil or a validation error listing every invalid field.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Internal(fmt.Errorf("validate: %w", err))
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fieldPath(fe),
			Message: v.message(fe),
		})
	}
	return apperrors.Validation(fields...)
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.Struct(i)
}

// fieldPath strips the top-level struct name from the namespace: "Skill.name" -> "name",
// "Education.institutions[0]" -> "institutions[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Format d'email invalide"
	case "url":
		return "URL invalide"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Doit contenir au moins %s caractères", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Doit contenir au moins %s élément(s)", fe.Param())
		}
		return fmt.Sprintf("Doit être au moins %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ne peut pas dépasser %s caractères", fe.Param())
		}
		return fmt.Sprintf("Doit être au plus %s", fe.Param())
	case "oneof":
		return "Valeur non autorisée (" + strings.ReplaceAll(fe.Param(), "'", "") + ")"
	case "yearrange":
		return fmt.Sprintf("Année invalide (entre %d et %d)", MinYear, v.now().Year())
	case "yearmonth":
		return "Format attendu : AAAA-MM"
	case "projectcategory":
		return "Catégorie inconnue"
	default:
		return "Valeur invalide"
	}
}
