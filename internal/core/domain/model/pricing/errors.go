package pricing

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// RuleConfigError reports a factor table that lacks a key required by a request.
// It indicates misconfigured pricing rules, not a bad request.
type RuleConfigError struct {
	Table string
	Key   string
}

func NewRuleConfigError(table, key string) *RuleConfigError {
	return &RuleConfigError{Table: table, Key: key}
}

func (e *RuleConfigError) Error() string {
	return fmt.Sprintf("%s: %s factor table has no %q entry", errs.ErrConfigurationIsInvalid, e.Table, e.Key)
}

func (e *RuleConfigError) Unwrap() error {
	return errs.ErrConfigurationIsInvalid
}
