// Package driver defines the narrow rendering backend the console
// draws through. The console core never talks to a concrete terminal
// or graphics library directly; it only sees this interface, which
// keeps the synchronization layer testable with an in-memory fake.
package driver

// Rect is a pixel-aligned rectangle in backend coordinates.
type Rect struct {
	X, Y, W, H int
}

// Driver is implemented by rendering backends. All methods are called
// from the render goroutine only; implementations do not need to be
// safe for concurrent use.
//
// Size and CellSize are reported in the same pixel unit. A terminal
// backend reports a 1x1 cell so pixel math degenerates to cell math.
type Driver interface {
	// Size returns the current drawable viewport in pixels.
	Size() (w, h int)
	// CellSize returns the fixed glyph cell footprint in pixels.
	CellSize() (w, h int)

	Clear()
	// DrawText draws a run of text with its top-left glyph at the
	// given cell coordinates. reverse selects the highlight style.
	DrawText(col, row int, text string, reverse bool)
	// FillRect re-styles the cells covered by r without changing
	// their content. Used for selection and cursor highlight.
	FillRect(r Rect, reverse bool)
	Present()

	SetClipboard(text string) error
	Clipboard() (string, error)

	Close()
}
