package widget

import "testing"

func TestPromptCursorEditing(t *testing.T) {
	p := NewPrompt("> ")
	for _, r := range "helo" {
		p.Insert(r)
	}
	p.MoveLeft()
	p.Insert('l')
	if got := p.Input(); got != "hello" {
		t.Fatalf("input = %q, want %q", got, "hello")
	}
	if got := p.CursorOffset(); got != 2+4 {
		t.Fatalf("cursor offset = %d, want %d", got, 6)
	}

	p.MoveHome()
	p.Backspace() // 行首退格是空操作
	if got := p.Input(); got != "hello" {
		t.Fatalf("backspace at start mutated input: %q", got)
	}
	p.MoveEnd()
	p.Backspace()
	if got := p.Input(); got != "hell" {
		t.Fatalf("input = %q, want %q", got, "hell")
	}
}

func TestPromptInsertTextFlattensBreaks(t *testing.T) {
	p := NewPrompt("$ ")
	p.InsertText("one\ntwo\rthree")
	if got := p.Input(); got != "one two three" {
		t.Fatalf("input = %q, want %q", got, "one two three")
	}
}

func TestPromptComposedInSearchMode(t *testing.T) {
	p := NewPrompt("> ")
	p.SetHistory([]string{"deploy prod"})
	p.StartSearch()
	p.Insert('d')
	if got := p.Input(); got != "deploy prod" {
		t.Fatalf("search hit = %q, want %q", got, "deploy prod")
	}
	composed := p.Composed()
	if composed != "(reverse-i-search)`d': deploy prod" {
		t.Fatalf("composed = %q", composed)
	}
	p.AcceptSearch()
	if p.Searching() {
		t.Fatal("accept did not leave search mode")
	}
	if got := p.Input(); got != "deploy prod" {
		t.Fatalf("accept dropped the hit: %q", got)
	}
}
