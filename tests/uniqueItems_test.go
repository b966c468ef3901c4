package tests

import (
	"testing"

	"github.com/kaptinlin/jsonschema6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniqueItemsValidation exercises the uniqueItems keyword, including
// the case where duplicate objects (not just scalars) are rejected.
func TestUniqueItemsValidation(t *testing.T) {
	compiler := jsonschema.NewCompiler()

	schema, err := compiler.Compile([]byte(`{"uniqueItems": true}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{1.0, 2.0, 3.0}).IsValid())
	assert.False(t, schema.Validate([]any{1.0, 2.0, 1.0}).IsValid())
	assert.True(t, schema.Validate([]any{}).IsValid())
	assert.True(t, schema.Validate([]any{map[string]any{"foo": "bar"}, map[string]any{"foo": "baz"}}).IsValid())
	assert.False(t, schema.Validate([]any{map[string]any{"foo": "bar"}, map[string]any{"foo": "bar"}}).IsValid())
}

// TestUniqueItemsFalseAllowsDuplicates exercises the default (false) case,
// where duplicates are permitted.
func TestUniqueItemsFalseAllowsDuplicates(t *testing.T) {
	compiler := jsonschema.NewCompiler()

	schema, err := compiler.Compile([]byte(`{"uniqueItems": false}`))
	require.NoError(t, err)

	assert.True(t, schema.Validate([]any{1.0, 1.0, 1.0}).IsValid())
}
