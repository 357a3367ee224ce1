// Package reflow 把一段文本切分成适配视口宽度的显示行区间。
// 纯函数实现，提示行和历史输出行共用同一套切分逻辑。
package reflow

// Span 是原文中一个左闭右开的 rune 区间 [Start, End)，对应一个
// 显示行。区间不含换行符，软换行处也不含被消费掉的空白符。
type Span struct {
	Start int
	End   int
}

// Reflow 从左到右单遍扫描 text，按单元格宽度 cellWidth 与视口
// 宽度 viewportWidth 产出有序的行区间：
//
//   - 换行符直接截断当前段，换行符本身不进入任何段；
//   - 空格和制表符记为候选折行点，本身不触发截断；
//   - 其余字符累计宽度溢出视口时折行：有候选点就在候选点软折行
//     （该空白符被消费，两侧的段都不包含它），否则在当前字符之后
//     硬折行（词中断开）。
//
// 输入为空或宽度参数非正时返回 nil。同样的参数重复调用产出
// 完全相同的结果，宽度变化后重算会整体替换旧区间。
func Reflow(text []rune, cellWidth, viewportWidth int) []Span {
	if len(text) == 0 || cellWidth <= 0 || viewportWidth <= 0 {
		return nil
	}

	var spans []Span
	start := 0
	// delim 取 0 表示当前段内还没见过空白。下标 0 处的空白因此
	// 不会成为折行点，行为与历史实现保持一致。
	delim := 0

	for curr, r := range text {
		switch {
		case r == '\n' || r == '\r':
			if curr > start {
				spans = append(spans, Span{Start: start, End: curr})
			}
			start = curr + 1
			delim = 0
		case r == ' ' || r == '\t':
			delim = curr
		case (curr-start+1)*cellWidth >= viewportWidth:
			if delim != 0 {
				spans = append(spans, Span{Start: start, End: delim})
				start = delim + 1
			} else {
				spans = append(spans, Span{Start: start, End: curr + 1})
				start = curr + 1
			}
			delim = 0
		}
	}
	if start < len(text) {
		spans = append(spans, Span{Start: start, End: len(text)})
	}
	return spans
}

// Text 返回 text 中 span 覆盖的子串。
func Text(text []rune, s Span) string {
	return string(text[s.Start:s.End])
}
