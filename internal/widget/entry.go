// Package widget 实现控制台的文本模型与屏幕布局：历史条目、提示行、
// 折行缓存、选区与滚动。所有状态只允许渲染 goroutine 触碰。
package widget

import (
	"conbox/internal/reflow"
)

// EntryKind 区分条目来源。输入条目在渲染时带提示符前缀。
type EntryKind int

const (
	EntryOutput EntryKind = iota
	EntryInput
)

// Line 是条目折行后的一个显示行。Y 是渲染期间临时赋值的屏幕行号，
// 仅在当帧内有效，用于把鼠标坐标映射回文本位置。
type Line struct {
	Span  reflow.Span
	Index int
	Y     int
}

// Entry 持有一个条目的原文和折行缓存。缓存只在 Rewrap 里整体重建，
// 字宽或视口变化后必须重算，绝不增量追加。
type Entry struct {
	Kind  EntryKind
	Text  []rune
	lines []Line
}

func NewEntry(kind EntryKind, text string) *Entry {
	return &Entry{Kind: kind, Text: []rune(text)}
}

// Rewrap 重建折行缓存。
func (e *Entry) Rewrap(cellW, viewW int) {
	spans := reflow.Reflow(e.Text, cellW, viewW)
	e.lines = e.lines[:0]
	for i, sp := range spans {
		e.lines = append(e.lines, Line{Span: sp, Index: i})
	}
}

// Lines 返回折行缓存。调用方不得保留跨帧引用。
func (e *Entry) Lines() []Line {
	return e.lines
}

// NumLines 返回条目当前占用的显示行数。
func (e *Entry) NumLines() int {
	return len(e.lines)
}

// LineText 返回某个显示行覆盖的子串。
func (e *Entry) LineText(l Line) string {
	return reflow.Text(e.Text, l.Span)
}

// SetText 替换原文并丢弃折行缓存，等下一次 Rewrap。
func (e *Entry) SetText(text string) {
	e.Text = []rune(text)
	e.lines = e.lines[:0]
}
