package validation_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fluentval/pkg/validation"
)

type profile struct {
	Nick  string
	Bio   *string
	Email string
	ID    string
}

func bio(e *validation.Execution[*profile]) *validation.StringProperty {
	return validation.ForStringPtr(e, func(p *profile) *string { return p.Bio }, "Bio")
}

func TestStringProperty_IsNotNullOrEmpty(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		messages int
	}{
		{"null emits one message", nil, 1},
		{"empty emits one message", ptr(""), 1},
		{"non-empty passes", ptr("hello"), 0},
		{"whitespace is not empty", ptr(" "), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(t, &profile{Bio: tt.value}, func(e *validation.Execution[*profile]) {
				bio(e).IsNotNullOrEmpty()
			})
			assert.Len(t, res.Messages, tt.messages)
			if tt.messages > 0 {
				assert.Equal(t, "is null or empty", res.Messages[0].Text)
			}
		})
	}

	t.Run("plain string", func(t *testing.T) {
		res := check(t, &profile{}, func(e *validation.Execution[*profile]) {
			validation.ForString(e, func(p *profile) string { return p.Nick }, "Nick").IsNotNullOrEmpty()
		})
		assert.Equal(t, []string{"is null or empty"}, res.Get("Nick"))
	})
}

func TestStringProperty_IsNotEmpty(t *testing.T) {
	tests := []struct {
		name     string
		value    *string
		messages int
	}{
		{"null passes", nil, 0},
		{"empty emits one message", ptr(""), 1},
		{"non-empty passes", ptr("hello"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := check(t, &profile{Bio: tt.value}, func(e *validation.Execution[*profile]) {
				bio(e).IsNotEmpty()
			})
			assert.Len(t, res.Messages, tt.messages)
			if tt.messages > 0 {
				assert.Equal(t, "is empty", res.Messages[0].Text)
			}
		})
	}
}

func TestStringProperty_NullChecks(t *testing.T) {
	res := check(t, &profile{}, func(e *validation.Execution[*profile]) {
		bio(e).IsNotNull().IsNull()
	})
	assert.Equal(t, []string{"is null"}, res.Get("Bio"))

	res = check(t, &profile{Bio: ptr("")}, func(e *validation.Execution[*profile]) {
		bio(e).IsNotNull().IsNull()
	})
	assert.Equal(t, []string{"is not null"}, res.Get("Bio"))

	res = check(t, &profile{}, func(e *validation.Execution[*profile]) {
		validation.ForString(e, func(p *profile) string { return p.Nick }, "Nick").IsNotNull()
	})
	assert.True(t, res.Success, "plain strings are never null")
}

func TestStringProperty_Matches(t *testing.T) {
	slug := regexp.MustCompile(`^[a-z0-9-]+$`)

	res := check(t, &profile{Nick: "Not A Slug"}, func(e *validation.Execution[*profile]) {
		validation.ForString(e, func(p *profile) string { return p.Nick }, "Nick").Matches(slug)
	})
	assert.Equal(t, []string{"has an invalid format"}, res.Get("Nick"))

	res = check(t, &profile{Nick: "a-slug"}, func(e *validation.Execution[*profile]) {
		validation.ForString(e, func(p *profile) string { return p.Nick }, "Nick").Matches(slug)
	})
	assert.True(t, res.Success)
}

func TestStringProperty_IsEmail(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"jane@example.com", true},
		{"", true},
		{"jane", false},
		{"Jane <jane@example.com>", false},
		{"jane@", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			res := check(t, &profile{Email: tt.value}, func(e *validation.Execution[*profile]) {
				validation.ForString(e, func(p *profile) string { return p.Email }, "Email").IsEmail()
			})
			assert.Equal(t, tt.valid, res.Success)
		})
	}
}

func TestStringProperty_IsUUID(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"", true},
		{"6BA7B810-9DAD-11D1-80B4-00C04FD430C8", false},
		{"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			res := check(t, &profile{ID: tt.value}, func(e *validation.Execution[*profile]) {
				validation.ForString(e, func(p *profile) string { return p.ID }, "ID").IsUUID()
			})
			assert.Equal(t, tt.valid, res.Success)
			if !tt.valid {
				assert.Equal(t, []string{"is not a valid UUID"}, res.Get("ID"))
			}
		})
	}
}

func TestStringProperty_FormatRulesSkipEmpty(t *testing.T) {
	res := check(t, &profile{}, func(e *validation.Execution[*profile]) {
		validation.ForString(e, func(p *profile) string { return p.Email }, "Email").
			IsNotNullOrEmpty().
			IsEmail()
	})
	assert.Equal(t, []string{"is null or empty"}, res.Get("Email"))
}

func TestStringProperty_Must(t *testing.T) {
	res := check(t, &profile{Bio: ptr("short")}, func(e *validation.Execution[*profile]) {
		bio(e).Must(func(s *string) bool { return s == nil || len(*s) >= 10 }, "shorter than {0}", 10)
	})
	assert.Equal(t, []string{"shorter than 10"}, res.Get("Bio"))
}
