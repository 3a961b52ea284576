package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = Spec{
	Fields: []Field{
		{Name: "status", Kind: KindEqualsBool},
		{Name: "brand_id"},
	},
	Searchable: []string{"name", "plate"},
}

func TestBuild(t *testing.T) {
	t.Run("empty input yields the zero predicate", func(t *testing.T) {
		p := Build(map[string]string{}, testSpec)

		assert.True(t, p.IsZero())
	})

	t.Run("search term ORs across searchable fields and bool is coerced", func(t *testing.T) {
		p := Build(map[string]string{"searchTerm": "ab", "status": "true"}, testSpec)

		require.NotNil(t, p.Search)
		assert.Equal(t, "ab", p.Search.Term)
		assert.Equal(t, []string{"name", "plate"}, p.Search.Fields)

		require.Len(t, p.And, 1)
		assert.Equal(t, "status", p.And[0].Field)
		assert.Equal(t, true, p.And[0].Value)
	})

	t.Run("false coerces too", func(t *testing.T) {
		p := Build(map[string]string{"status": "false"}, testSpec)

		require.Len(t, p.And, 1)
		assert.Equal(t, false, p.And[0].Value)
	})

	t.Run("non-boolean value for a bool field is dropped", func(t *testing.T) {
		p := Build(map[string]string{"status": "maybe"}, testSpec)

		assert.Empty(t, p.And)
	})

	t.Run("empty string values are excluded, not matched literally", func(t *testing.T) {
		p := Build(map[string]string{"brand_id": "", "searchTerm": ""}, testSpec)

		assert.True(t, p.IsZero())
	})

	t.Run("undeclared keys are ignored", func(t *testing.T) {
		p := Build(map[string]string{"color": "red"}, testSpec)

		assert.True(t, p.IsZero())
	})

	t.Run("does not mutate the caller's map", func(t *testing.T) {
		params := map[string]string{"searchTerm": "ab", "brand_id": "4"}
		Build(params, testSpec)

		assert.Equal(t, map[string]string{"searchTerm": "ab", "brand_id": "4"}, params)
	})

	t.Run("exact-match fields keep their raw value", func(t *testing.T) {
		p := Build(map[string]string{"brand_id": "7"}, testSpec)

		require.Len(t, p.And, 1)
		assert.Equal(t, Condition{Field: "brand_id", Value: "7"}, p.And[0])
	})
}
