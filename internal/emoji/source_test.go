package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	src := Default()
	require.Positive(t, src.Len())
	assert.NoError(t, Validate(src.Items()))
}

func TestNewCopiesInput(t *testing.T) {
	in := []string{"🍕", "🌮"}
	src := New(in)
	in[0] = "🍔"

	assert.Equal(t, "🍕", src.At(0), "Source must not alias caller slice")

	out := src.Items()
	out[1] = "🍟"
	assert.Equal(t, "🌮", src.At(1), "Items must return a copy")
}

func TestAtOutOfRange(t *testing.T) {
	src := New([]string{"🍕"})
	assert.Empty(t, src.At(-1))
	assert.Empty(t, src.At(1))
}

func TestIndex(t *testing.T) {
	src := New([]string{"🍕", "🌮", "🍩"})
	assert.Equal(t, 1, src.Index("🌮"))
	assert.Equal(t, -1, src.Index("🍔"))
}

func TestRowsGrid(t *testing.T) {
	src := New([]string{"a", "b", "c", "d", "e", "f", "g"})

	rows := src.Rows(3)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"d", "e", "f"}, rows[1])
	assert.Equal(t, []string{"g"}, rows[2])
}

func TestRowsPreserveOrderForEveryWidth(t *testing.T) {
	src := Default()
	for columns := 1; columns <= 5; columns++ {
		var flat []string
		rows := src.Rows(columns)
		for i, row := range rows {
			if i < len(rows)-1 {
				assert.Len(t, row, columns, "only the last row may be short")
			}
			assert.LessOrEqual(t, len(row), columns)
			flat = append(flat, row...)
		}
		assert.Equal(t, src.Items(), flat, "columns=%d", columns)
	}
}

func TestRowsZeroColumnsTreatedAsOne(t *testing.T) {
	src := New([]string{"a", "b"})
	assert.Equal(t, [][]string{{"a"}, {"b"}}, src.Rows(0))
}

func TestRowsEmpty(t *testing.T) {
	assert.Empty(t, Source{}.Rows(3))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]string{"a", "b"}))
	assert.Error(t, Validate([]string{"a", ""}))
	assert.Error(t, Validate([]string{"a", "b", "a"}))
}
