package widget

import (
	"strings"

	"conbox/internal/driver"
	"conbox/internal/events"
)

// selection 维护拖拽选区。坐标是屏幕格子坐标，anchor 是按下点，
// head 跟随拖拽。motion 槽只在拖拽期间连接，松开立刻断开。
type selection struct {
	dragging bool
	present  bool
	ax, ay   int
	hx, hy   int
	motion   *events.Slot
}

func (sel *selection) clear() {
	sel.dragging = false
	sel.present = false
	if sel.motion != nil {
		sel.motion.Disconnect()
	}
}

// normalized 返回阅读顺序排好的起止格子（先行后列）。
func (sel *selection) normalized() (sx, sy, ex, ey int) {
	sx, sy, ex, ey = sel.ax, sel.ay, sel.hx, sel.hy
	if sy > ey || (sy == ey && sx > ex) {
		sx, sy, ex, ey = ex, ey, sx, sy
	}
	return sx, sy, ex, ey
}

func (s *Screen) cellAt(ev events.MouseEvent) (col, row int) {
	if s.m.CellW <= 0 || s.m.CellH <= 0 {
		return 0, 0
	}
	return ev.X / s.m.CellW, ev.Y / s.m.CellH
}

func (s *Screen) onMouseDown(ev events.Event) {
	if ev.Mouse.Button != events.ButtonLeft {
		return
	}
	col, row := s.cellAt(ev.Mouse)
	s.sel.clear()
	s.sel.dragging = true
	s.sel.ax, s.sel.ay = col, row
	s.sel.hx, s.sel.hy = col, row
	s.sel.motion.Connect()
}

func (s *Screen) onMouseMotion(ev events.Event) {
	if !s.sel.dragging {
		return
	}
	s.sel.hx, s.sel.hy = s.cellAt(ev.Mouse)
	s.sel.present = true
}

func (s *Screen) onMouseUp(ev events.Event) {
	if ev.Mouse.Button != events.ButtonLeft {
		return
	}
	s.sel.dragging = false
	s.sel.motion.Disconnect()
}

// SelectedText 用最近一帧的行映射把选区格子换回文本，行间以
// 换行符连接。没有选区时 ok 为 false。
func (s *Screen) SelectedText() (string, bool) {
	if !s.sel.present {
		return "", false
	}
	sx, sy, ex, ey := s.sel.normalized()
	var parts []string
	for row := sy; row <= ey && row < len(s.frame); row++ {
		if row < 0 {
			continue
		}
		fr := s.frame[row]
		if fr.entry == nil {
			continue
		}
		text := []rune(fr.entry.LineText(fr.entry.Lines()[fr.line]))
		from, to := 0, len(text)
		if row == sy && sx > from {
			from = sx
		}
		if row == ey && ex+1 < to {
			to = ex + 1
		}
		if from >= to {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, string(text[from:to]))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n"), true
}

// renderSelection 把选区覆盖的格子反色。单行选区只盖 [sx, ex]，
// 多行时首尾行截半、中间行整行。
func (s *Screen) renderSelection() {
	if !s.sel.present {
		return
	}
	cols := s.m.Columns()
	sx, sy, ex, ey := s.sel.normalized()
	for row := sy; row <= ey; row++ {
		if row < 0 || row >= s.m.Rows() {
			continue
		}
		from, to := 0, cols-1
		if row == sy {
			from = sx
		}
		if row == ey {
			to = ex
		}
		if from > to {
			continue
		}
		s.drv.FillRect(driver.Rect{
			X: from * s.m.CellW,
			Y: row * s.m.CellH,
			W: (to - from + 1) * s.m.CellW,
			H: s.m.CellH,
		}, true)
	}
}
