package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeField(t *testing.T) {
	t.Run("scalar string", func(t *testing.T) {
		f, err := decodeField("name", json.RawMessage(`"My Mod"`))
		require.NoError(t, err)
		assert.Equal(t, ShapeScalar, f.Shape)
		assert.Equal(t, "My Mod", f.Scalar)
	})

	t.Run("sequence of strings", func(t *testing.T) {
		f, err := decodeField("authors", json.RawMessage(`["Alice", "Bob"]`))
		require.NoError(t, err)
		assert.Equal(t, ShapeSequence, f.Shape)
		assert.Equal(t, []string{"Alice", "Bob"}, f.Sequence)
	})

	t.Run("mapping preserves source key order", func(t *testing.T) {
		f, err := decodeField("name", json.RawMessage(`{"zh": "模组", "en": "Mod", "de": "Modifikation"}`))
		require.NoError(t, err)
		assert.Equal(t, ShapeMapping, f.Shape)
		assert.Equal(t, []Pair{
			{Key: "zh", Value: "模组"},
			{Key: "en", Value: "Mod"},
			{Key: "de", Value: "Modifikation"},
		}, f.Pairs)
	})

	t.Run("unsupported shapes fail loudly", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"number", `42`},
			{"boolean", `true`},
			{"null", `null`},
			{"nested array element", `["ok", 7]`},
			{"nested object value", `{"k": {"nested": "v"}}`},
			{"array value in object", `{"k": ["v"]}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := decodeField("f", json.RawMessage(tt.raw))
				var fieldErr *MalformedFieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "f", fieldErr.Field)
			})
		}
	})
}

func TestFieldEmpty(t *testing.T) {
	assert.True(t, Field{}.Empty())
	assert.True(t, Field{Shape: ShapeScalar, Scalar: ""}.Empty())
	assert.True(t, Field{Shape: ShapeSequence}.Empty())
	assert.True(t, Field{Shape: ShapeMapping}.Empty())
	assert.False(t, Field{Shape: ShapeScalar, Scalar: "x"}.Empty())
	assert.False(t, Field{Shape: ShapeSequence, Sequence: []string{"x"}}.Empty())
	assert.False(t, Field{Shape: ShapeMapping, Pairs: []Pair{{Key: "k", Value: "v"}}}.Empty())
}
