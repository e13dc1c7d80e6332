package validation

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
)

// Message keys used by the built-in combinators.
const (
	KeyIsNull        = "validation.is_null"
	KeyIsNotNull     = "validation.is_not_null"
	KeyIsNullOrEmpty = "validation.is_null_or_empty"
	KeyIsEmpty       = "validation.is_empty"
	KeyIsNotEqualTo  = "validation.is_not_equal_to"
	KeySmallerThan   = "validation.smaller_than"
	KeyBiggerThan    = "validation.bigger_than"
	KeyInvalidFormat = "validation.invalid_format"
	KeyInvalidEmail  = "validation.invalid_email"
	KeyInvalidUUID   = "validation.invalid_uuid"
)

var defaultTemplates = map[string]string{
	KeyIsNull:        "is null",
	KeyIsNotNull:     "is not null",
	KeyIsNullOrEmpty: "is null or empty",
	KeyIsEmpty:       "is empty",
	KeyIsNotEqualTo:  "is not equal to",
	KeySmallerThan:   "smaller than {0}",
	KeyBiggerThan:    "bigger than {0}",
	KeyInvalidFormat: "has an invalid format",
	KeyInvalidEmail:  "is not a valid email address",
	KeyInvalidUUID:   "is not a valid UUID",
}

// Catalog resolves a message key into display text, substituting the
// positional arguments.
type Catalog interface {
	Message(key string, args ...any) string
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func(key string, args ...any) string

func (f CatalogFunc) Message(key string, args ...any) string {
	return f(key, args...)
}

type templateCatalog map[string]string

func (c templateCatalog) Message(key string, args ...any) string {
	tmpl, ok := c[key]
	if !ok {
		tmpl = key
	}
	return Format(tmpl, args...)
}

var defaultCatalog = templateCatalog(defaultTemplates)

// DefaultCatalog returns the built-in English catalog. Unknown keys are
// returned as-is after formatting.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

// DefaultTemplates returns a copy of the built-in English templates.
func DefaultTemplates() map[string]string {
	return maps.Clone(defaultTemplates)
}

var placeholderRegex = regexp.MustCompile(`\{(\d+)\}`)

// Format replaces positional placeholders ("{0}", "{1}", ...) in tmpl with
// the matching argument. Placeholders without an argument are left untouched.
func Format(tmpl string, args ...any) string {
	if len(args) == 0 {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx >= len(args) {
			return match
		}
		return fmt.Sprint(args[idx])
	})
}
