package widget

// Metrics 汇总当前的几何参数：单元格像素尺寸与视口像素尺寸。
// 终端后端的单元格是 1x1，像素运算退化成格子运算。
type Metrics struct {
	CellW, CellH int
	ViewW, ViewH int
}

// Columns 返回视口能容纳的整列数。
func (m Metrics) Columns() int {
	if m.CellW <= 0 {
		return 0
	}
	return m.ViewW / m.CellW
}

// Rows 返回视口能容纳的整行数。
func (m Metrics) Rows() int {
	if m.CellH <= 0 {
		return 0
	}
	return m.ViewH / m.CellH
}

// Valid 报告几何参数是否可用于折行与渲染。
func (m Metrics) Valid() bool {
	return m.CellW > 0 && m.CellH > 0 && m.ViewW > 0 && m.ViewH > 0
}
