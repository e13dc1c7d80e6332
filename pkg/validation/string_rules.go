package validation

import (
	"net/mail"
	"regexp"

	"github.com/google/uuid"
)

// StringProperty is the rule chain for a string value. A nil pointer value
// is null; plain strings selected with ForString never are.
type StringProperty struct {
	*Property[*string]
}

// IsNull fails when the value is not null.
func (p *StringProperty) IsNull() *StringProperty {
	p.Property.IsNull()
	return p
}

// IsNotNull fails when the value is null.
func (p *StringProperty) IsNotNull() *StringProperty {
	p.Property.IsNotNull()
	return p
}

// IsNotNullOrEmpty fails when the value is null or "".
func (p *StringProperty) IsNotNullOrEmpty() *StringProperty {
	if p.value == nil || *p.value == "" {
		p.Fail(KeyIsNullOrEmpty)
	}
	return p
}

// IsNotEmpty fails when the value is "". A null value passes.
func (p *StringProperty) IsNotEmpty() *StringProperty {
	if p.value != nil && *p.value == "" {
		p.Fail(KeyIsEmpty)
	}
	return p
}

// Matches fails when a non-empty value does not match re.
func (p *StringProperty) Matches(re *regexp.Regexp) *StringProperty {
	if re == nil {
		abort(argumentError("pattern", "is nil"))
	}
	return p.check(re.MatchString, KeyInvalidFormat)
}

// IsEmail fails when a non-empty value is not a bare RFC 5322 address.
func (p *StringProperty) IsEmail() *StringProperty {
	return p.check(func(s string) bool {
		addr, err := mail.ParseAddress(s)
		return err == nil && addr.Address == s
	}, KeyInvalidEmail)
}

// IsUUID fails when a non-empty value is not a canonical UUID.
func (p *StringProperty) IsUUID() *StringProperty {
	return p.check(func(s string) bool {
		id, err := uuid.Parse(s)
		return err == nil && id.String() == s
	}, KeyInvalidUUID)
}

// Must records the catalog message for key when ok returns false.
// Null values are passed to ok as nil.
func (p *StringProperty) Must(ok func(*string) bool, key string, args ...any) *StringProperty {
	p.Property.Must(ok, key, args...)
	return p
}

// check runs a format predicate on non-empty values only, so format rules
// compose with IsNotNullOrEmpty without duplicate messages.
func (p *StringProperty) check(ok func(string) bool, key string) *StringProperty {
	if p.value == nil || *p.value == "" {
		return p
	}
	if !ok(*p.value) {
		p.Fail(key)
	}
	return p
}
