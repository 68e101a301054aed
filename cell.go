package pixelterm

// Cell is the content and style of a single fixed-size grid position
type Cell struct {
	Character      string // Extended Grapheme Cluster
	Foreground     Color
	Background     Color
	UnderlineColor Color
	Attribute      AttributeMask
}

func (c Cell) blinks() bool {
	return c.Attribute&(AttrSlowBlink|AttrRapidBlink) != 0
}

// CellUpdate is a single changed cell in a draw call, addressed by grid
// column and row
type CellUpdate struct {
	Col  int
	Row  int
	Cell Cell
}
