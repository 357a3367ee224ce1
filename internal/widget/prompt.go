package widget

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// promptHistory 负责输入行历史浏览状态（上下箭头）。
// cursor == len(entries) 表示当前在"最新输入"（非浏览历史）位置。
type promptHistory struct {
	entries []string
	cursor  int
	draft   string
}

func (h *promptHistory) Set(entries []string) {
	h.entries = append([]string(nil), entries...)
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *promptHistory) Add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	h.entries = append(h.entries, text)
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *promptHistory) Browsing() bool {
	return h.cursor < len(h.entries)
}

func (h *promptHistory) ResetBrowsing() {
	h.cursor = len(h.entries)
	h.draft = ""
}

func (h *promptHistory) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

func (h *promptHistory) Next() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = len(h.entries)
	return h.draft, true
}

// Prompt 管理提示符、编辑中的输入行、光标与历史检索。显示用的
// 组合文本（提示符 + 输入）由它拼好交给折行引擎。
type Prompt struct {
	prompt []rune
	input  []rune
	cursor int

	hist promptHistory

	// Ctrl-R 反查状态。searching 期间输入字符进入 query，
	// 匹配结果直接替换编辑区但不动历史游标。
	searching bool
	query     []rune
}

func NewPrompt(prompt string) *Prompt {
	p := &Prompt{}
	p.SetPrompt(prompt)
	return p
}

func (p *Prompt) SetPrompt(prompt string) {
	p.prompt = []rune(prompt)
}

func (p *Prompt) PromptText() string {
	return string(p.prompt)
}

// Input 返回当前编辑中的输入内容。
func (p *Prompt) Input() string {
	return string(p.input)
}

// Composed 返回提示符与输入拼接后的显示文本。反查模式下换成
// 检索提示，风格沿用 shell 的 reverse-i-search。
func (p *Prompt) Composed() string {
	if p.searching {
		return "(reverse-i-search)`" + string(p.query) + "': " + string(p.input)
	}
	return string(p.prompt) + string(p.input)
}

// CursorOffset 返回光标在 Composed 文本中的 rune 下标。
func (p *Prompt) CursorOffset() int {
	if p.searching {
		return len([]rune("(reverse-i-search)`")) + len(p.query)
	}
	return len(p.prompt) + p.cursor
}

// SetHistory 用持久化历史初始化浏览状态。
func (p *Prompt) SetHistory(entries []string) {
	p.hist.Set(entries)
}

func (p *Prompt) Insert(r rune) {
	if p.searching {
		p.query = append(p.query, r)
		p.applySearch()
		return
	}
	p.input = append(p.input[:p.cursor], append([]rune{r}, p.input[p.cursor:]...)...)
	p.cursor++
}

// InsertText 在光标处整段插入（粘贴路径）。
func (p *Prompt) InsertText(text string) {
	for _, r := range text {
		if r == '\n' || r == '\r' {
			r = ' '
		}
		p.Insert(r)
	}
}

func (p *Prompt) Backspace() {
	if p.searching {
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.applySearch()
		}
		return
	}
	if p.cursor == 0 {
		return
	}
	p.input = append(p.input[:p.cursor-1], p.input[p.cursor:]...)
	p.cursor--
}

func (p *Prompt) MoveLeft() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Prompt) MoveRight() {
	if p.cursor < len(p.input) {
		p.cursor++
	}
}

func (p *Prompt) MoveHome() { p.cursor = 0 }
func (p *Prompt) MoveEnd()  { p.cursor = len(p.input) }

func (p *Prompt) HistoryPrev() {
	if text, ok := p.hist.Prev(string(p.input)); ok {
		p.setInput(text)
	}
}

func (p *Prompt) HistoryNext() {
	if text, ok := p.hist.Next(); ok {
		p.setInput(text)
	}
}

// Submit 提交当前输入：记入历史浏览、清空编辑区并返回文本。
// 反查模式被提交动作顺带退出。
func (p *Prompt) Submit() string {
	p.endSearch()
	text := string(p.input)
	p.hist.Add(text)
	p.setInput("")
	return text
}

// StartSearch 进入 Ctrl-R 反查模式。已在模式中则重置检索词。
func (p *Prompt) StartSearch() {
	p.searching = true
	p.query = p.query[:0]
}

// CancelSearch 退出反查并清空编辑区恢复到空输入。
func (p *Prompt) CancelSearch() {
	if !p.searching {
		return
	}
	p.endSearch()
	p.setInput("")
}

// AcceptSearch 退出反查，保留当前命中的文本继续编辑。
func (p *Prompt) AcceptSearch() {
	p.endSearch()
}

func (p *Prompt) Searching() bool {
	return p.searching
}

func (p *Prompt) endSearch() {
	p.searching = false
	p.query = p.query[:0]
}

// applySearch 用模糊匹配在历史里找最近的命中项替换编辑区。
// 没有命中时保持现状，让用户看到检索词继续敲。
func (p *Prompt) applySearch() {
	if len(p.query) == 0 {
		return
	}
	matches := fuzzy.Find(string(p.query), p.hist.entries)
	if len(matches) == 0 {
		return
	}
	// fuzzy 按得分排序，同分时取历史中更靠后（更新）的那条。
	best := matches[0]
	for _, m := range matches {
		if m.Score == best.Score && m.Index > best.Index {
			best = m
		}
	}
	p.setInput(p.hist.entries[best.Index])
}

func (p *Prompt) setInput(text string) {
	p.input = []rune(text)
	p.cursor = len(p.input)
}
