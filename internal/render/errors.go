package render

import (
	"errors"
	"fmt"
)

// Error classes.
var (
	// ErrInvalidSpec matches every structural validation failure.
	ErrInvalidSpec = errors.New("invalid query spec")

	// ErrUnsafeStatement matches every Safety Guard rejection.
	ErrUnsafeStatement = errors.New("unsafe statement rejected")
)

// Validation rules, in evaluation order.
var (
	ErrNoTables              = errors.New("at least one table required")
	ErrAggregateGroupBy      = errors.New("aggregate and groupBy must be used together")
	ErrHavingRequiresGroupBy = errors.New("having requires aggregate and groupBy")
	ErrDuplicateAlias        = errors.New("duplicate column alias")
	ErrUnknownTableAlias     = errors.New("unknown table alias")
	ErrUnsupportedDialect    = errors.New("unsupported dialect")
	ErrUnsupportedFeature    = errors.New("unsupported feature")
	ErrUngroupedColumn       = errors.New("columns must be grouped or aggregated")
	ErrJoinWithoutCondition  = errors.New("join requires at least one on condition")
	ErrWhereRequired         = errors.New("where condition required when selecting from multiple tables")
	ErrMalformed             = errors.New("malformed query spec")
	ErrSchemaMismatch        = errors.New("query spec does not match schema")
)

// Safety Guard reasons.
var (
	ErrUnsafeQuery = errors.New("possible unsafe query")
	ErrNotSelect   = errors.New("only SELECT statements are allowed")
)

// ValidationError reports the rule a spec violates and the offending identifier.
type ValidationError struct {
	Rule   error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s", e.Rule, e.Detail)
	}
	return e.Rule.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Rule
}

// Is reports membership in the ErrInvalidSpec class.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// Invalid creates a ValidationError with a formatted detail.
func Invalid(rule error, format string, args ...any) error {
	return &ValidationError{Rule: rule, Detail: fmt.Sprintf(format, args...)}
}

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

func (e UnsupportedFeatureError) Unwrap() error {
	return ErrUnsupportedFeature
}

// Is reports membership in the ErrInvalidSpec class.
func (e UnsupportedFeatureError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// UnsafeStatementError reports a Safety Guard rejection of rendered SQL.
// Valid specs never produce one; seeing it means rendering emitted unexpected text.
type UnsafeStatementError struct {
	Reason error
	Token  string
}

func (e *UnsafeStatementError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%v: found %q", e.Reason, e.Token)
	}
	return e.Reason.Error()
}

func (e *UnsafeStatementError) Unwrap() error {
	return e.Reason
}

// Is reports membership in the ErrUnsafeStatement class.
func (e *UnsafeStatementError) Is(target error) bool {
	return target == ErrUnsafeStatement
}
