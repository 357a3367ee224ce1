package widget

import (
	"conbox/internal/driver"
	"conbox/internal/events"
)

// frameRow 记录一帧里某个屏幕行画的是哪个条目的哪个折行，
// 供选区取词时把格子坐标映射回文本。每帧渲染时整表重建。
type frameRow struct {
	entry *Entry
	line  int
}

// Screen 是控制台的屏幕模型：历史条目集合、提示行、滚动偏移与
// 选区。它通过 Emitter 订阅翻译后的 UI 事件，通过 Driver 绘制。
// 全部方法只能在渲染 goroutine 上调用。
type Screen struct {
	drv     driver.Driver
	emitter *events.Emitter

	m       Metrics
	entries []*Entry // 下标 0 最新，尾部最旧
	prompt  *Prompt

	// promptEntry 是提示行专用条目，始终独立于历史集合。
	promptEntry *Entry

	maxLines int // 历史折行总数上限，超出从最旧端淘汰
	numLines int
	scroll   int // 自底部向上的行偏移，0 表示贴底

	sel   selection
	frame []frameRow
}

// Options 配置屏幕初始状态。
type Options struct {
	Prompt     string
	Scrollback int
}

func NewScreen(drv driver.Driver, em *events.Emitter, opts Options) *Screen {
	if opts.Scrollback <= 0 {
		opts.Scrollback = 1024
	}
	s := &Screen{
		drv:         drv,
		prompt:      NewPrompt(opts.Prompt),
		promptEntry: NewEntry(EntryInput, ""),
		maxLines:    opts.Scrollback,
	}
	vw, vh := drv.Size()
	cw, ch := drv.CellSize()
	s.m = Metrics{CellW: cw, CellH: ch, ViewW: vw, ViewH: vh}

	em.Connect(events.EventKeyDown, s.onKey)
	em.Connect(events.EventTextInput, s.onText)
	em.Connect(events.EventMouseButtonDown, s.onMouseDown)
	em.Connect(events.EventMouseButtonUp, s.onMouseUp)
	em.Connect(events.EventMouseWheel, s.onWheel)
	em.Connect(events.EventWindowResized, s.onResize)
	em.Connect(events.EventFontSizeChanged, s.onFontSizeChanged)
	// 拖拽进行中才需要跟踪鼠标移动，平时停在停用池里。
	s.sel.motion = em.ConnectLater(events.EventMouseMotion, s.onMouseMotion)
	s.emitter = em
	return s
}

// Prompt 暴露提示行模型给调用方（加载历史、读取输入）。
func (s *Screen) Prompt() *Prompt {
	return s.prompt
}

// Metrics 返回当前几何参数。
func (s *Screen) Metrics() Metrics {
	return s.m
}

// AddOutput 追加一条输出条目并按需淘汰最旧行。
func (s *Screen) AddOutput(text string) {
	e := NewEntry(EntryOutput, text)
	e.Rewrap(s.m.CellW, s.m.ViewW)
	s.entries = append([]*Entry{e}, s.entries...)
	s.numLines += e.NumLines()
	s.evict()
}

// Clear 清空历史集合，提示行保留。
func (s *Screen) Clear() {
	s.entries = nil
	s.numLines = 0
	s.scroll = 0
	s.sel.clear()
}

// SetScrollback 调整行数上限并立即淘汰超出的部分。
func (s *Screen) SetScrollback(n int) {
	if n <= 0 {
		return
	}
	s.maxLines = n
	s.evict()
}

// SetPrompt 替换提示符文本。
func (s *Screen) SetPrompt(text string) {
	s.prompt.SetPrompt(text)
}

func (s *Screen) evict() {
	for s.numLines > s.maxLines && len(s.entries) > 0 {
		last := s.entries[len(s.entries)-1]
		s.numLines -= last.NumLines()
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// RewrapAll 在几何变化后重建全部折行缓存并重新累计行数。
func (s *Screen) RewrapAll() {
	s.numLines = 0
	for _, e := range s.entries {
		e.Rewrap(s.m.CellW, s.m.ViewW)
		s.numLines += e.NumLines()
	}
	s.evict()
	s.clampScroll()
	s.sel.clear()
}

func (s *Screen) onResize(ev events.Event) {
	if ev.Width <= 0 || ev.Height <= 0 {
		return
	}
	s.m.ViewW, s.m.ViewH = ev.Width, ev.Height
	s.RewrapAll()
}

func (s *Screen) onFontSizeChanged(events.Event) {
	cw, ch := s.drv.CellSize()
	vw, vh := s.drv.Size()
	s.m = Metrics{CellW: cw, CellH: ch, ViewW: vw, ViewH: vh}
	s.RewrapAll()
}

func (s *Screen) onText(ev events.Event) {
	s.prompt.InsertText(ev.Text)
	s.scroll = 0
}

func (s *Screen) onKey(ev events.Event) {
	if ev.Key.Mod&events.ModCtrl != 0 {
		s.onCtrlKey(ev.Key)
		return
	}
	switch ev.Key.Sym {
	case events.KeyReturn:
		s.submitInput()
	case events.KeyBackspace:
		s.prompt.Backspace()
	case events.KeyEscape:
		if s.prompt.Searching() {
			s.prompt.CancelSearch()
		} else {
			s.sel.clear()
		}
	case events.KeyLeft:
		s.prompt.AcceptSearch()
		s.prompt.MoveLeft()
	case events.KeyRight:
		s.prompt.AcceptSearch()
		s.prompt.MoveRight()
	case events.KeyHome:
		s.prompt.MoveHome()
	case events.KeyEnd:
		s.prompt.MoveEnd()
	case events.KeyUp:
		s.prompt.HistoryPrev()
	case events.KeyDown:
		s.prompt.HistoryNext()
	case events.KeyPageUp:
		s.scrollBy(s.m.Rows() / 2)
	case events.KeyPageDown:
		s.scrollBy(-s.m.Rows() / 2)
	case events.KeyRune:
		s.prompt.Insert(ev.Key.Rune)
		s.scroll = 0
	}
}

func (s *Screen) onCtrlKey(k events.KeyEvent) {
	if k.Sym != events.KeyRune {
		return
	}
	switch k.Rune {
	case 'c', 'C':
		if text, ok := s.SelectedText(); ok {
			_ = s.drv.SetClipboard(text)
		}
	case 'v', 'V':
		if text, err := s.drv.Clipboard(); err == nil && text != "" {
			s.prompt.InsertText(text)
			s.scroll = 0
		}
	case 'r', 'R':
		s.prompt.StartSearch()
	}
}

// submitInput 把提交的行转成历史条目，并向订阅方广播新行事件。
// 提交时总是回滚到贴底位置。
func (s *Screen) submitInput() {
	composed := s.prompt.Composed()
	line := s.prompt.Submit()
	e := NewEntry(EntryInput, composed)
	e.Rewrap(s.m.CellW, s.m.ViewW)
	s.entries = append([]*Entry{e}, s.entries...)
	s.numLines += e.NumLines()
	s.evict()
	s.scroll = 0

	s.emitter.Emit(events.Event{Type: events.EventNewInputLine, Line: line})
}

func (s *Screen) onWheel(ev events.Event) {
	s.scrollBy(ev.Wheel)
}

func (s *Screen) scrollBy(delta int) {
	s.scroll += delta
	s.clampScroll()
}

func (s *Screen) clampScroll() {
	if s.scroll < 0 {
		s.scroll = 0
	}
	max := s.numLines + s.promptRows() - s.m.Rows()
	if max < 0 {
		max = 0
	}
	if s.scroll > max {
		s.scroll = max
	}
}

func (s *Screen) promptRows() int {
	n := s.promptEntry.NumLines()
	if n == 0 {
		return 1
	}
	return n
}

// Render 画一帧：提示行贴底，历史条目从新到旧向上铺，滚动偏移
// 跳过底部若干行。渲染顺带重建 frame 映射表供选区使用。
func (s *Screen) Render() {
	if !s.m.Valid() {
		return
	}
	s.drv.Clear()
	rows := s.m.Rows()

	s.promptEntry.SetText(s.prompt.Composed())
	s.promptEntry.Rewrap(s.m.CellW, s.m.ViewW)

	if cap(s.frame) < rows {
		s.frame = make([]frameRow, rows)
	}
	s.frame = s.frame[:rows]
	for i := range s.frame {
		s.frame[i] = frameRow{}
	}

	y := rows - 1
	plines := s.promptEntry.Lines()
	if len(plines) == 0 {
		// 空提示行也占一行，光标有处可画。
		y--
	}
	for i := len(plines) - 1; i >= 0 && y >= 0; i-- {
		plines[i].Y = y
		s.frame[y] = frameRow{entry: s.promptEntry, line: i}
		s.drv.DrawText(0, y, s.promptEntry.LineText(plines[i]), false)
		y--
	}

	skip := s.scroll
entries:
	for _, e := range s.entries {
		lines := e.Lines()
		for i := len(lines) - 1; i >= 0; i-- {
			if skip > 0 {
				skip--
				continue
			}
			if y < 0 {
				break entries
			}
			lines[i].Y = y
			s.frame[y] = frameRow{entry: e, line: i}
			s.drv.DrawText(0, y, e.LineText(lines[i]), false)
			y--
		}
	}

	s.renderSelection()
	s.renderCursor()
	s.drv.Present()
}

// renderCursor 把光标格子反色。光标可能落在提示行末尾之后一格。
func (s *Screen) renderCursor() {
	plines := s.promptEntry.Lines()
	off := s.prompt.CursorOffset()
	col, row := 0, s.m.Rows()-1
	for i := range plines {
		sp := plines[i].Span
		if off >= sp.Start && off < sp.End {
			col, row = off-sp.Start, plines[i].Y
			break
		}
		if i == len(plines)-1 {
			col, row = sp.End-sp.Start, plines[i].Y
			if col >= s.m.Columns() {
				col = s.m.Columns() - 1
			}
		}
	}
	s.drv.FillRect(driver.Rect{
		X: col * s.m.CellW,
		Y: row * s.m.CellH,
		W: s.m.CellW,
		H: s.m.CellH,
	}, true)
}
