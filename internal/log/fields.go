package log

import "github.com/shopspring/decimal"

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldError      = "error"
	FieldErrorType  = "error_type"
	FieldOperation  = "operation"
	FieldScreen     = "screen"
	FieldEntryID    = "entry_id"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldPercent    = "percent"
	FieldStatus     = "status"
	FieldField      = "field"
	FieldPage       = "page"
	FieldExpression = "expression"
	FieldTimer      = "timer"
	FieldInterval   = "interval"
	FieldPetals     = "petals"
	FieldCount      = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentConfig  = "config"
	ComponentScreens = "screens"
	ComponentAnim    = "anim"
	ComponentPetals  = "petals"
	ComponentMascot  = "mascot"
	ComponentCounter = "counter"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpUpdate   = "update"
	OpToggle   = "toggle"
	OpMount    = "mount"
	OpRelease  = "release"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category
func (f LogFields) WithErrorType(kind string) LogFields {
	f[FieldErrorType] = kind
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithEntry adds entry-related fields. The screen comes from the logger.
func (f LogFields) WithEntry(id, category string, amount decimal.Decimal) LogFields {
	f[FieldEntryID] = id
	f[FieldCategory] = category
	f[FieldAmount] = amount.String()
	return f
}

// WithTimer adds scheduler timer fields
func (f LogFields) WithTimer(name string, interval string) LogFields {
	f[FieldTimer] = name
	f[FieldInterval] = interval
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
