package store

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their stored (bson) name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("bson"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError reports a document the store refused to write.
type ValidationError struct {
	Model  string
	Fields []string
	Rules  []string
}

func (e *ValidationError) Error() string {
	problems := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		if e.Rules[i] == "required" {
			problems[i] = field + " is required"
		} else {
			problems[i] = fmt.Sprintf("%s failed on %s", field, e.Rules[i])
		}
	}
	return fmt.Sprintf("%s validation failed: %s", e.Model, strings.Join(problems, ", "))
}

func validateDocument(model string, doc interface{}) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	verr := &ValidationError{Model: model}
	for _, fe := range fieldErrors {
		verr.Fields = append(verr.Fields, fe.Field())
		verr.Rules = append(verr.Rules, fe.Tag())
	}
	return verr
}
