package pixelterm

import "fmt"

// ClearType is the region of the grid a clear operation applies to
type ClearType int

const (
	ClearAll ClearType = iota
	ClearAfterCursor
	ClearBeforeCursor
	ClearCurrentLine
	ClearUntilNewline
)

func (c ClearType) String() string {
	switch c {
	case ClearAll:
		return "All"
	case ClearAfterCursor:
		return "AfterCursor"
	case ClearBeforeCursor:
		return "BeforeCursor"
	case ClearCurrentLine:
		return "CurrentLine"
	case ClearUntilNewline:
		return "UntilNewline"
	}
	return fmt.Sprintf("ClearType(%d)", int(c))
}

// DrawError reports that a primitive draw operation on the display failed.
// It is not recoverable at this layer; the caller decides whether to abort
// rendering or continue with degraded output
type DrawError struct {
	Cause error
}

func (e *DrawError) Error() string {
	if e.Cause == nil {
		return "drawing to display failed"
	}
	return fmt.Sprintf("drawing to display failed: %v", e.Cause)
}

func (e *DrawError) Unwrap() error {
	return e.Cause
}

// ClearUnsupportedError reports a request for a partial clear mode this
// backend does not implement. It is never silently downgraded to a full
// clear
type ClearUnsupportedError struct {
	Kind ClearType
}

func (e *ClearUnsupportedError) Error() string {
	return fmt.Sprintf("clear region %s is not supported", e.Kind)
}
