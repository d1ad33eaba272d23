package client

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
)

// Field describes one input of an administration form.
type Field struct {
	// Name is the payload key, e.g. "channelCode"
	Name string
	// Label is the human name used in validation messages
	Label string
	// Required rejects empty values
	Required bool
	// Numeric rejects values that do not parse as a number
	Numeric bool
}

// SubmitFunc persists the validated field values, typically via the gateway.
type SubmitFunc func(ctx context.Context, values map[string]string) error

// Form drives one create-or-edit screen: field state, validation, the
// submission guard, and the post-submit lifecycle.
type Form struct {
	fields   []Field
	values   map[string]string
	inFlight atomic.Bool

	// Submit persists the form
	Submit SubmitFunc
	// OnFieldError reports the first failed validation, inline at its field
	OnFieldError func(field, message string)
	// OnError reports a submission failure; the message stays visible until
	// the next submission attempt
	OnError func(message string)
	// OnSuccess reports a completed submission
	OnSuccess func()
	// Reload refreshes the backing list after a successful submission
	Reload func(ctx context.Context)

	lastError string
}

// NewForm builds a form over the given schema.
func NewForm(fields []Field, submit SubmitFunc) *Form {
	return &Form{
		fields: fields,
		values: map[string]string{},
		Submit: submit,
	}
}

// Set records a field value.
func (f *Form) Set(name, value string) {
	f.values[name] = value
}

// Value returns a field's current value.
func (f *Form) Value(name string) string {
	return f.values[name]
}

// LastError returns the failure message of the most recent submission, empty
// when the last submission succeeded or none was made.
func (f *Form) LastError() string {
	return f.lastError
}

// validate checks fields in schema order and reports only the first failure.
func (f *Form) validate() bool {
	for _, field := range f.fields {
		value := strings.TrimSpace(f.values[field.Name])
		if field.Required && value == "" {
			f.fail(field, field.Label+" is required")
			return false
		}
		if field.Numeric && value != "" {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				f.fail(field, field.Label+" must be a number")
				return false
			}
		}
	}
	return true
}

func (f *Form) fail(field Field, message string) {
	if f.OnFieldError != nil {
		f.OnFieldError(field.Name, message)
	}
}

// Do validates and submits the form. While a submission is in flight further
// calls return false without reaching the server. After success the field
// values reset and the backing list reloads.
func (f *Form) Do(ctx context.Context) bool {
	if !f.inFlight.CompareAndSwap(false, true) {
		return false
	}
	defer f.inFlight.Store(false)

	f.lastError = ""

	if !f.validate() {
		return false
	}

	if err := f.Submit(ctx, f.copyValues()); err != nil {
		f.lastError = err.Error()
		if f.OnError != nil {
			f.OnError(err.Error())
		}
		return false
	}

	f.values = map[string]string{}
	if f.OnSuccess != nil {
		f.OnSuccess()
	}
	if f.Reload != nil {
		f.Reload(ctx)
	}
	return true
}

func (f *Form) copyValues() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// FanOut expands one parent selection and many child selections into the
// list payload a mapping screen posts in a single call. build constructs one
// mapping record per parent/child pair.
func FanOut[T any](parentID uint, childIDs []uint, build func(parentID, childID uint) T) []T {
	rows := make([]T, 0, len(childIDs))
	for _, childID := range childIDs {
		rows = append(rows, build(parentID, childID))
	}
	return rows
}
