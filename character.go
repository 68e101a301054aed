package pixelterm

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Character is a single extended-grapheme-cluster. It also contains the width
// of the EGC in cells
type Character struct {
	Grapheme string
	Width    int
}

// Characters converts a string into a slice of Characters suitable to assign
// to grid cells. Tabs expand to 8 spaces
func Characters(s string) []Character {
	egcs := make([]Character, 0, len(s))
	state := -1
	cluster := ""
	w := 0
	for s != "" {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			for i := 0; i < 8; i += 1 {
				egcs = append(egcs, Character{" ", 1})
			}
			continue
		}
		if w == 0 && cluster != "" {
			w = clusterWidth(cluster)
		}
		egcs = append(egcs, Character{cluster, w})
	}
	return egcs
}

// clusterWidth is the wcwidth fallback for clusters uniseg reports as zero
// width, eg a lone combining mark
func clusterWidth(s string) int {
	total := 0
	for _, r := range s {
		total += runewidth.RuneWidth(r)
	}
	if total == 0 {
		total = 1
	}
	return total
}

// CellsForString lays a styled string out as a cell update stream starting
// at (col, row). Newlines move to the first column of the next row. A wide
// glyph occupies its leading cell; the cells it spills into are emitted as
// blanks with the same style so the background stays consistent
func CellsForString(col int, row int, s string, fg Color, bg Color, attr AttributeMask) []CellUpdate {
	updates := make([]CellUpdate, 0, len(s))
	startCol := col
	for _, char := range Characters(s) {
		if char.Grapheme == "\n" {
			col = startCol
			row += 1
			continue
		}
		updates = append(updates, CellUpdate{
			Col: col,
			Row: row,
			Cell: Cell{
				Character:  char.Grapheme,
				Foreground: fg,
				Background: bg,
				Attribute:  attr,
			},
		})
		for i := 1; i < char.Width; i += 1 {
			updates = append(updates, CellUpdate{
				Col: col + i,
				Row: row,
				Cell: Cell{
					Character:  " ",
					Foreground: fg,
					Background: bg,
					Attribute:  attr,
				},
			})
		}
		col += char.Width
	}
	return updates
}
