// Package validation accepts raw unit-configuration documents and turns
// them into validated model values.
//
// Validation is a pure function from untrusted structured input to either
// an immutable models value or a structured rejection. It runs in three
// stages:
//
// 1. JSON parsing - Ensures valid JSON syntax and wire shapes
// 2. Struct validation - Checks required fields and declared constraints
// 3. Error mapping - Classifies every failure and locates it on the wire
//
// A document with any invalid field is wholly rejected; there is no
// clamping, coercion, or partial acceptance. Every error carries a dotted
// field path in wire names from the document root, e.g.
// nodes[2].alertRules.cpu.minThreshold, so one top-level call yields one
// localized error even when the failure originates arbitrarily deep.
//
// # Usage Example
//
//	validator := validation.New()
//	result, err := validator.ValidateUnitConfig(jsonData)
//	if err != nil {
//	    // Handle error
//	}
//	if !result.Valid {
//	    for _, verr := range result.Errors {
//	        fmt.Printf("%s: %s\n", verr.Field, verr.Message)
//	    }
//	}
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"evalgo.org/fleetconfig/config"
	"evalgo.org/fleetconfig/models"
)

// Kind classifies a validation failure.
type Kind string

// Validation failure kinds.
const (
	// KindMissingRequiredField - a mandatory field is absent from input
	KindMissingRequiredField Kind = "missingRequiredField"

	// KindRangeViolation - a numeric field is outside its declared bound
	KindRangeViolation Kind = "rangeViolation"

	// KindLengthViolation - a string field exceeds its declared length ceiling
	KindLengthViolation Kind = "lengthViolation"

	// KindTypeMismatch - a field is present but not coercible to its shape
	KindTypeMismatch Kind = "typeMismatch"

	// KindStructuralViolation - wrong shape at a nested object or list position
	KindStructuralViolation Kind = "structuralViolation"
)

// ValidationError represents a single validation error with field-level
// details. Field is a dotted path in wire names from the document root.
type ValidationError struct {
	// Field is the wire-name path of the field that failed validation
	Field string `json:"field"`

	// Kind classifies the failure
	Kind Kind `json:"kind"`

	// Message describes why the validation failed
	Message string `json:"message"`

	// Value is the invalid value that caused the error (optional)
	Value interface{} `json:"value,omitempty"`
}

// ValidationResult represents the complete result of a validation
// operation. It indicates whether validation passed and includes any
// errors found.
type ValidationResult struct {
	// Valid is true if validation passed, false otherwise
	Valid bool `json:"valid"`

	// Errors contains all validation errors found (empty if Valid is true)
	Errors []ValidationError `json:"errors,omitempty"`
}

// DocumentError is the rejection returned by the Parse functions. It wraps
// the full ValidationResult so callers can recover field-level details with
// errors.As.
type DocumentError struct {
	Result *ValidationResult
}

// Error returns the first field error as a summary.
func (e *DocumentError) Error() string {
	if e.Result == nil || len(e.Result.Errors) == 0 {
		return "document rejected"
	}
	first := e.Result.Errors[0]
	return fmt.Sprintf("document rejected: %s: %s", first.Field, first.Message)
}

// Validator turns raw configuration documents into validated model values.
// It combines go-playground struct validation with explicit decode-stage
// checks. A Validator is safe for concurrent use.
type Validator struct {
	// structValidator validates declared field constraints
	structValidator *validator.Validate

	// opts is the validation policy (strictness, size ceiling)
	opts config.Options
}

// New creates a Validator with the default validation policy.
func New() *Validator {
	return NewWithOptions(config.Default())
}

// NewWithOptions creates a Validator with an explicit validation policy.
func NewWithOptions(opts config.Options) *Validator {
	sv := validator.New(validator.WithRequiredStructEnabled())

	// Report wire names, not Go field names, in error paths.
	sv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{structValidator: sv, opts: opts}
}

// ValidateUnitConfig validates a unit configuration document.
func (v *Validator) ValidateUnitConfig(data []byte) (*ValidationResult, error) {
	var cfg models.UnitConfig
	return v.validateDocument(data, &cfg), nil
}

// ParseUnitConfig validates a unit configuration document and returns the
// accepted value. On rejection it returns a *DocumentError carrying the
// full ValidationResult.
func (v *Validator) ParseUnitConfig(data []byte) (*models.UnitConfig, error) {
	var cfg models.UnitConfig
	if result := v.validateDocument(data, &cfg); !result.Valid {
		return nil, &DocumentError{Result: result}
	}
	return &cfg, nil
}

// ValidateNodeConfig validates a standalone node configuration document.
func (v *Validator) ValidateNodeConfig(data []byte) (*ValidationResult, error) {
	var cfg models.NodeConfig
	return v.validateDocument(data, &cfg), nil
}

// ParseNodeConfig validates a standalone node configuration document and
// returns the accepted value.
func (v *Validator) ParseNodeConfig(data []byte) (*models.NodeConfig, error) {
	var cfg models.NodeConfig
	if result := v.validateDocument(data, &cfg); !result.Valid {
		return nil, &DocumentError{Result: result}
	}
	return &cfg, nil
}

// ValidateUnitStatus validates a unit status report document.
func (v *Validator) ValidateUnitStatus(data []byte) (*ValidationResult, error) {
	var status models.UnitStatus
	return v.validateDocument(data, &status), nil
}

// ParseUnitStatus validates a unit status report document and returns the
// accepted value.
func (v *Validator) ParseUnitStatus(data []byte) (*models.UnitStatus, error) {
	var status models.UnitStatus
	if result := v.validateDocument(data, &status); !result.Valid {
		return nil, &DocumentError{Result: result}
	}
	return &status, nil
}

// ValidateMonitoringBatch validates a monitoring report document.
func (v *Validator) ValidateMonitoringBatch(data []byte) (*ValidationResult, error) {
	var batch models.MonitoringBatch
	return v.validateDocument(data, &batch), nil
}

// ParseMonitoringBatch validates a monitoring report document and returns
// the accepted value.
func (v *Validator) ParseMonitoringBatch(data []byte) (*models.MonitoringBatch, error) {
	var batch models.MonitoringBatch
	if result := v.validateDocument(data, &batch); !result.Valid {
		return nil, &DocumentError{Result: result}
	}
	return &batch, nil
}

// validateDocument runs the full pipeline: size guard, JSON decode, struct
// constraint checks. out must be a pointer to the target model.
func (v *Validator) validateDocument(data []byte, out interface{}) *ValidationResult {
	if v.opts.MaxDocumentSize > 0 && len(data) > v.opts.MaxDocumentSize {
		return rejected(ValidationError{
			Field:   "document",
			Kind:    KindLengthViolation,
			Message: fmt.Sprintf("document size %d exceeds the %d byte ceiling", len(data), v.opts.MaxDocumentSize),
		})
	}

	if verr := v.decode(data, out); verr != nil {
		return rejected(*verr)
	}

	if err := v.structValidator.Struct(out); err != nil {
		return &ValidationResult{Valid: false, Errors: v.constraintErrors(err)}
	}

	return &ValidationResult{Valid: true}
}

// decode unmarshals the raw document, mapping decode failures onto the
// error taxonomy.
func (v *Validator) decode(data []byte, out interface{}) *ValidationError {
	dec := json.NewDecoder(bytes.NewReader(data))
	if v.opts.StrictFields {
		dec.DisallowUnknownFields()
	}

	err := dec.Decode(out)
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrInvalidFormatVersion) {
		return &ValidationError{
			Field:   "formatVersion",
			Kind:    KindTypeMismatch,
			Message: err.Error(),
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		// typeErr.Field drops array indices (nodes.priority), so rebuild
		// the path from the document text at the error offset instead.
		field := wirePathAtOffset(data, typeErr.Offset)
		if field == "" {
			field = typeErr.Field
		}
		if field == "" {
			field = "document"
		}
		return &ValidationError{
			Field:   field,
			Kind:    kindForShape(typeErr.Type),
			Message: fmt.Sprintf("cannot decode JSON %s into %s", typeErr.Value, typeErr.Type),
		}
	}

	return &ValidationError{
		Field:   "document",
		Kind:    KindStructuralViolation,
		Message: fmt.Sprintf("invalid JSON: %v", err),
	}
}

// constraintErrors maps go-playground field errors onto the error taxonomy
// with wire-name paths.
func (v *Validator) constraintErrors(err error) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{
			Field:   "document",
			Kind:    KindStructuralViolation,
			Message: err.Error(),
		}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		verr := ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Kind:    kindForTag(fe.Tag()),
			Message: messageFor(fe),
		}
		if fe.Tag() != "required" {
			verr.Value = fe.Value()
		}
		out = append(out, verr)
	}

	return out
}

// wirePathAtOffset rebuilds the dotted wire-name path, array indices
// included, of the value at the given byte offset in the document.
// encoding/json reports type errors with a Field that drops indices and an
// Offset that points into the offending value, so the path is recovered by
// walking the document tokens up to that offset. Returns "" when the
// offset cannot be located.
func wirePathAtOffset(data []byte, offset int64) string {
	if offset <= 0 || offset > int64(len(data)) {
		return ""
	}

	type frame struct {
		array     bool
		index     int
		key       string
		expectKey bool
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var stack []frame
	var lastValuePath string

	renderPath := func() string {
		var b strings.Builder
		for _, f := range stack {
			if f.array {
				fmt.Fprintf(&b, "[%d]", f.index)
				continue
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(f.key)
		}
		return b.String()
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}

		top := len(stack) - 1

		if delim, ok := tok.(json.Delim); ok && (delim == '}' || delim == ']') {
			stack = stack[:top]
			if len(stack) > 0 && !stack[len(stack)-1].array {
				stack[len(stack)-1].expectKey = true
			}
		} else if key, ok := tok.(string); ok && top >= 0 && !stack[top].array && stack[top].expectKey {
			stack[top].key = key
			stack[top].expectKey = false
		} else {
			// Value position: a scalar or the start of a container.
			if top >= 0 && stack[top].array {
				stack[top].index++
			}
			lastValuePath = renderPath()
			if delim, ok := tok.(json.Delim); ok {
				stack = append(stack, frame{array: delim == '[', index: -1, expectKey: delim == '{'})
			} else if top >= 0 && !stack[top].array {
				stack[top].expectKey = true
			}
		}

		if dec.InputOffset() >= offset {
			return lastValuePath
		}
	}
}

// fieldPath strips the root type segment from a validator namespace,
// leaving the dotted wire-name path from the document root.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// kindForShape classifies a decode failure by the expected Go shape:
// object and list positions are structural, everything else is a plain
// type mismatch.
func kindForShape(t reflect.Type) Kind {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return KindStructuralViolation
	default:
		return KindTypeMismatch
	}
}

// kindForTag classifies a constraint-tag failure.
func kindForTag(tag string) Kind {
	switch tag {
	case "required":
		return KindMissingRequiredField
	case "gte", "lte", "gt", "lt":
		return KindRangeViolation
	case "max", "min", "len":
		return KindLengthViolation
	case "eq", "oneof":
		return KindTypeMismatch
	default:
		return KindStructuralViolation
	}
}

// messageFor renders a human-readable message for a constraint failure.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "eq":
		return fmt.Sprintf("must be %q", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

func rejected(errs ...ValidationError) *ValidationResult {
	return &ValidationResult{Valid: false, Errors: errs}
}
