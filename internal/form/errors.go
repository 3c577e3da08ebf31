package form

import (
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Error messages shown next to form fields
const (
	MsgRequired      = "This field is required."
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."
	MsgInvalid       = "Enter a valid value."
)

// Errors maps a form field name to its messages
type Errors map[string][]string

// Add appends a message for field
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether field has at least one message
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// First returns the first message for field or an empty string
func (e Errors) First(field string) string {
	if msgs := e[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// Empty reports whether there are no messages at all
func (e Errors) Empty() bool {
	return len(e) == 0
}

// fromValidation translates validator errors into per-field messages keyed by
// the struct's form tag. Any other error is returned unchanged.
func fromValidation(input interface{}, err error) (Errors, error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	t := reflect.TypeOf(input)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := Errors{}
	for _, fe := range verrs {
		name := fe.StructField()
		if f, ok := t.FieldByName(fe.StructField()); ok {
			if tag := f.Tag.Get("form"); tag != "" {
				name = tag
			}
		}
		out.Add(name, message(fe))
	}
	return out, nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "max":
		length := 0
		if s, ok := fe.Value().(string); ok {
			length = utf8.RuneCountInString(s)
		}
		return fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), length)
	case "numeric":
		return MsgInvalidChoice
	default:
		return MsgInvalid
	}
}
