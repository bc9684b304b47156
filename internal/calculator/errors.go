package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidField matches every *InvalidFieldError.
var ErrInvalidField = errors.New("invalid field")

// InvalidFieldError reports a field whose value failed validation.
type InvalidFieldError struct {
	Field   Field
	Message string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

// ErrorSet is the set of fields that failed validation in one evaluation.
// Fields are kept in priority order.
type ErrorSet struct {
	fields []Field
}

func (e *ErrorSet) add(key Field) {
	e.fields = append(e.fields, key)
}

// Has reports whether key is invalid.
func (e ErrorSet) Has(key Field) bool {
	for _, f := range e.fields {
		if f == key {
			return true
		}
	}
	return false
}

// Len returns the number of invalid fields.
func (e ErrorSet) Len() int { return len(e.fields) }

// Empty reports whether no field is invalid.
func (e ErrorSet) Empty() bool { return len(e.fields) == 0 }

// Fields returns the invalid fields in priority order.
func (e ErrorSet) Fields() []Field {
	return append([]Field(nil), e.fields...)
}

// First returns the highest priority invalid field.
func (e ErrorSet) First() (Field, bool) {
	if len(e.fields) == 0 {
		return "", false
	}
	return e.fields[0], true
}

// Err joins an *InvalidFieldError per invalid field, or returns nil.
func (e ErrorSet) Err() error {
	if len(e.fields) == 0 {
		return nil
	}
	errs := make([]error, len(e.fields))
	for i, f := range e.fields {
		errs[i] = &InvalidFieldError{Field: f, Message: Message(f)}
	}
	return errors.Join(errs...)
}
