// Package tcelldrv implements the console rendering backend on top of
// a tcell terminal screen. Cells are reported as 1x1 pixels, so the
// core's pixel math collapses to cell math.
package tcelldrv

import (
	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"conbox/internal/driver"
	"conbox/internal/events"
)

type Driver struct {
	screen tcell.Screen
	tr     translator
}

// New initializes a tcell screen with mouse, focus and paste
// reporting enabled.
func New() (*Driver, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.EnableFocus()
	s.EnablePaste()
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	return &Driver{screen: s}, nil
}

// Run polls terminal events, translates them and hands them to push.
// It returns when the screen is finalized. Meant to be run on its own
// goroutine; push is the producer-side entry of the event queue.
func (d *Driver) Run(push func(events.Event)) {
	for {
		tev := d.screen.PollEvent()
		if tev == nil {
			return
		}
		for _, ev := range d.tr.translate(tev) {
			push(ev)
		}
	}
}

func (d *Driver) Size() (int, int) {
	return d.screen.Size()
}

func (d *Driver) CellSize() (int, int) {
	return 1, 1
}

func (d *Driver) Clear() {
	d.screen.Clear()
}

func (d *Driver) DrawText(col, row int, text string, reverse bool) {
	style := tcell.StyleDefault.Reverse(reverse)
	x := col
	for _, r := range text {
		d.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// FillRect re-styles covered cells in place, keeping their runes.
func (d *Driver) FillRect(r driver.Rect, reverse bool) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			mainc, combc, style, _ := d.screen.GetContent(x, y)
			d.screen.SetContent(x, y, mainc, combc, style.Reverse(reverse))
		}
	}
}

func (d *Driver) Present() {
	d.screen.Show()
}

func (d *Driver) SetClipboard(text string) error {
	return clipboard.WriteAll(text)
}

func (d *Driver) Clipboard() (string, error) {
	return clipboard.ReadAll()
}

// Close finalizes the screen. The poll loop in Run observes the nil
// event and exits on its own.
func (d *Driver) Close() {
	d.screen.Fini()
}

var _ driver.Driver = (*Driver)(nil)
