package pixelterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Character
	}{
		{
			name:  "ascii",
			input: "ab",
			want:  []Character{{"a", 1}, {"b", 1}},
		},
		{
			name:  "wide",
			input: "日本",
			want:  []Character{{"日", 2}, {"本", 2}},
		},
		{
			name:  "tab expands",
			input: "\t",
			want: []Character{
				{" ", 1}, {" ", 1}, {" ", 1}, {" ", 1},
				{" ", 1}, {" ", 1}, {" ", 1}, {" ", 1},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Characters(test.input))
		})
	}
}

func TestCellsForString(t *testing.T) {
	updates := CellsForString(2, 1, "hi", ColorRed, ColorDefault, AttrBold)
	assert.Equal(t, []CellUpdate{
		{Col: 2, Row: 1, Cell: Cell{Character: "h", Foreground: ColorRed, Attribute: AttrBold}},
		{Col: 3, Row: 1, Cell: Cell{Character: "i", Foreground: ColorRed, Attribute: AttrBold}},
	}, updates)
}

func TestCellsForStringWideGlyph(t *testing.T) {
	updates := CellsForString(0, 0, "日x", ColorDefault, ColorBlue, AttrNone)
	assert.Equal(t, 3, len(updates))
	assert.Equal(t, "日", updates[0].Cell.Character)
	// the spilled-into cell is blanked with the same style
	assert.Equal(t, " ", updates[1].Cell.Character)
	assert.Equal(t, ColorBlue, updates[1].Cell.Background)
	assert.Equal(t, 1, updates[1].Col)
	assert.Equal(t, "x", updates[2].Cell.Character)
	assert.Equal(t, 2, updates[2].Col)
}

func TestCellsForStringNewline(t *testing.T) {
	updates := CellsForString(3, 0, "a\nb", ColorDefault, ColorDefault, AttrNone)
	assert.Equal(t, 2, len(updates))
	assert.Equal(t, 3, updates[0].Col)
	assert.Equal(t, 0, updates[0].Row)
	assert.Equal(t, 3, updates[1].Col)
	assert.Equal(t, 1, updates[1].Row)
}
