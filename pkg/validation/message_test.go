package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluentval/pkg/validation"
)

func TestNewMessage(t *testing.T) {
	t.Run("creates message with both fields", func(t *testing.T) {
		msg, err := validation.NewMessage("Name", "is null")
		require.NoError(t, err)
		assert.Equal(t, "Name", msg.Property)
		assert.Equal(t, "is null", msg.Text)
		assert.Equal(t, "Name: is null", msg.String())
	})

	t.Run("rejects empty property name", func(t *testing.T) {
		_, err := validation.NewMessage("", "is null")
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "property name")
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := validation.NewMessage("Name", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrInvalidArgument))
		assert.Contains(t, err.Error(), "message")
	})

	t.Run("compares by value", func(t *testing.T) {
		a, _ := validation.NewMessage("Name", "is null")
		b, _ := validation.NewMessage("Name", "is null")
		assert.Equal(t, a, b)
		assert.True(t, a == b)
	})
}
