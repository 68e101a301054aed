package pixelterm

// AttributeMask represents a bitmask of boolean attributes to style a cell
type AttributeMask uint16

const (
	AttrNone               = 0
	AttrBold AttributeMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrSlowBlink
	AttrRapidBlink
	AttrReverse
	AttrInvisible
	AttrStrikethrough
)
