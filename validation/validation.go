// Package validation evaluates declarative per-field rule chains. Every
// rule in every chain runs, so a form comes back with all of its problems
// annotated at once rather than just the first one.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"campus-market/i18n"
)

var validate = validator.New()

// FieldError is a single failed rule, with its message already localized.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule is one predicate plus the message key reported when it fails.
// Tag-backed rules delegate to validator/v10; fn-backed rules cover checks
// that have no Var-compatible tag form.
type Rule struct {
	tag     string
	fn      func(value string) bool
	message string
}

// Chain is an ordered rule list for one field. Optional chains are skipped
// entirely when the value is blank.
type Chain struct {
	Field    string
	Value    string
	Optional bool
	Rules    []Rule
}

func Required(message string) Rule {
	return Rule{tag: "required", message: message}
}

func MinLength(n int, message string) Rule {
	return Rule{tag: fmt.Sprintf("min=%d", n), message: message}
}

func MaxLength(n int, message string) Rule {
	return Rule{tag: fmt.Sprintf("max=%d", n), message: message}
}

// OneOf passes when the value is empty (leave that to Required) or matches
// one of the allowed values.
func OneOf(allowed []string, message string) Rule {
	return Rule{fn: func(value string) bool {
		if value == "" {
			return true
		}
		for _, v := range allowed {
			if v == value {
				return true
			}
		}
		return false
	}, message: message}
}

// NonNegativeNumber passes on empty values and on parseable numbers >= 0.
func NonNegativeNumber(message string) Rule {
	return Rule{fn: func(value string) bool {
		if value == "" {
			return true
		}
		n, err := strconv.ParseFloat(value, 64)
		return err == nil && n >= 0
	}, message: message}
}

// EqualTo checks cross-field equality (password confirmation).
func EqualTo(other string, message string) Rule {
	return Rule{fn: func(value string) bool { return value == other }, message: message}
}

// Validate runs every rule of every chain and returns all failures with
// messages localized for lang. A nil result means the payload is valid.
func Validate(lang string, chains ...Chain) []FieldError {
	var errs []FieldError
	for _, c := range chains {
		if c.Optional && strings.TrimSpace(c.Value) == "" {
			continue
		}
		for _, r := range c.Rules {
			ok := true
			if r.tag != "" {
				ok = validate.Var(c.Value, r.tag) == nil
			} else if r.fn != nil {
				ok = r.fn(c.Value)
			}
			if !ok {
				errs = append(errs, FieldError{Field: c.Field, Message: i18n.T(lang, r.message)})
			}
		}
	}
	return errs
}
