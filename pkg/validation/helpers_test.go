package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fluentval/pkg/validation"
)

// check runs rules against obj and fails the test on a contract error.
func check[T any](t *testing.T, obj T, rules validation.Rules[T]) validation.Result {
	t.Helper()
	res, err := validation.New(rules).Execute(obj)
	require.NoError(t, err)
	return res
}

func ptr[T any](v T) *T {
	return &v
}
