package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fluentval/pkg/validation"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		args []any
		want string
	}{
		{"no placeholders", "is null", nil, "is null"},
		{"single placeholder", "smaller than {0}", []any{18}, "smaller than 18"},
		{"repeated placeholder", "{0} and {0}", []any{"x"}, "x and x"},
		{"multiple placeholders", "{1} before {0}", []any{"a", "b"}, "b before a"},
		{"missing argument stays", "between {0} and {1}", []any{1}, "between 1 and {1}"},
		{"no arguments keeps template", "smaller than {0}", nil, "smaller than {0}"},
		{"named braces untouched", "{name} {0}", []any{1}, "{name} 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.Format(tt.tmpl, tt.args...))
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := validation.DefaultCatalog()

	assert.Equal(t, "is null", c.Message(validation.KeyIsNull))
	assert.Equal(t, "is not null", c.Message(validation.KeyIsNotNull))
	assert.Equal(t, "is null or empty", c.Message(validation.KeyIsNullOrEmpty))
	assert.Equal(t, "is empty", c.Message(validation.KeyIsEmpty))
	assert.Equal(t, "is not equal to", c.Message(validation.KeyIsNotEqualTo))
	assert.Equal(t, "smaller than 3", c.Message(validation.KeySmallerThan, 3))
	assert.Equal(t, "bigger than 9", c.Message(validation.KeyBiggerThan, 9))

	t.Run("unknown key falls back to the key", func(t *testing.T) {
		assert.Equal(t, "custom {0}", c.Message("custom {0}"))
		assert.Equal(t, "custom 1", c.Message("custom {0}", 1))
	})
}

func TestDefaultTemplates_ReturnsCopy(t *testing.T) {
	tmpl := validation.DefaultTemplates()
	tmpl[validation.KeyIsNull] = "changed"
	assert.Equal(t, "is null", validation.DefaultCatalog().Message(validation.KeyIsNull))
}

func TestCatalogFunc(t *testing.T) {
	c := validation.CatalogFunc(func(key string, args ...any) string {
		return "[" + key + "]"
	})
	assert.Equal(t, "[k]", c.Message("k"))
}
