package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	dbquotes "github.com/mrlokans/quotebook/internal/database/quotes"
	"github.com/mrlokans/quotebook/internal/entities"
	"github.com/mrlokans/quotebook/internal/quotes"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator:
//
//	notblank        non-empty after trimming whitespace
//	categoryfilter  a known category or "all"
//	sortorder       a supported listing order
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Report fields by their json/form names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation("notblank", validateNotBlank)
		_ = v.RegisterValidation("categoryfilter", validateCategoryFilter)
		_ = v.RegisterValidation("sortorder", validateSortOrder)
	})
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateCategoryFilter(fl validator.FieldLevel) bool {
	value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return value == "" || value == quotes.CategoryAll || entities.Category(value).IsValid()
}

func validateSortOrder(fl validator.FieldLevel) bool {
	_, err := dbquotes.ParseSortOrder(fl.Field().String())
	return err == nil
}

// bindingErrorFields converts a binding error into per-field messages.
// Errors that are not validation failures (malformed JSON) yield a single
// "body" entry.
func bindingErrorFields(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: msgForTag(fe)})
	}
	return fields
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "categoryfilter":
		return fmt.Sprintf("unknown category %q", fe.Value())
	case "sortorder":
		return fmt.Sprintf("unsupported sort order %q", fe.Value())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
