package tcelldrv

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"conbox/internal/events"
)

func TestTranslateKeySymbols(t *testing.T) {
	var tr translator
	cases := []struct {
		key  tcell.Key
		want events.Key
	}{
		{tcell.KeyEnter, events.KeyReturn},
		{tcell.KeyBackspace2, events.KeyBackspace},
		{tcell.KeyEsc, events.KeyEscape},
		{tcell.KeyUp, events.KeyUp},
		{tcell.KeyPgDn, events.KeyPageDown},
		{tcell.KeyHome, events.KeyHome},
	}
	for _, c := range cases {
		out := tr.translate(tcell.NewEventKey(c.key, 0, tcell.ModNone))
		if len(out) != 1 || out[0].Type != events.EventKeyDown || out[0].Key.Sym != c.want {
			t.Fatalf("key %v: got %+v, want sym %v", c.key, out, c.want)
		}
	}
}

func TestTranslatePlainRuneBecomesTextInput(t *testing.T) {
	var tr translator
	out := tr.translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if len(out) != 1 || out[0].Type != events.EventTextInput || out[0].Text != "x" {
		t.Fatalf("got %+v, want text input %q", out, "x")
	}
}

func TestTranslateCtrlLetter(t *testing.T) {
	var tr translator
	out := tr.translate(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl))
	if len(out) != 1 {
		t.Fatalf("got %d events", len(out))
	}
	k := out[0].Key
	if out[0].Type != events.EventKeyDown || k.Sym != events.KeyRune || k.Rune != 'r' || k.Mod&events.ModCtrl == 0 {
		t.Fatalf("ctrl-r translated to %+v", out[0])
	}
}

func TestTranslateMouseButtonEdges(t *testing.T) {
	var tr translator

	down := tr.translate(tcell.NewEventMouse(3, 5, tcell.Button1, tcell.ModNone))
	if len(down) != 1 || down[0].Type != events.EventMouseButtonDown || down[0].Mouse.Button != events.ButtonLeft {
		t.Fatalf("press: got %+v", down)
	}
	if down[0].Mouse.X != 3 || down[0].Mouse.Y != 5 {
		t.Fatalf("press position: %+v", down[0].Mouse)
	}

	// 按住移动是 motion，不再重复产生 down。
	motion := tr.translate(tcell.NewEventMouse(4, 5, tcell.Button1, tcell.ModNone))
	if len(motion) != 1 || motion[0].Type != events.EventMouseMotion {
		t.Fatalf("drag: got %+v", motion)
	}

	up := tr.translate(tcell.NewEventMouse(4, 5, tcell.ButtonNone, tcell.ModNone))
	if len(up) != 1 || up[0].Type != events.EventMouseButtonUp || up[0].Mouse.Button != events.ButtonLeft {
		t.Fatalf("release: got %+v", up)
	}
}

func TestTranslateWheelKeepsButtonState(t *testing.T) {
	var tr translator
	tr.translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))

	wheel := tr.translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if len(wheel) != 1 || wheel[0].Type != events.EventMouseWheel || wheel[0].Wheel != 1 {
		t.Fatalf("wheel: got %+v", wheel)
	}

	// 滚轮不改按钮掩码，随后的释放仍能看到按下状态。
	up := tr.translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if len(up) != 1 || up[0].Type != events.EventMouseButtonUp {
		t.Fatalf("release after wheel: got %+v", up)
	}
}

func TestTranslateResizeAndFocus(t *testing.T) {
	var tr translator
	out := tr.translate(tcell.NewEventResize(80, 24))
	if len(out) != 1 || out[0].Type != events.EventWindowResized || out[0].Width != 80 || out[0].Height != 24 {
		t.Fatalf("resize: got %+v", out)
	}

	got := tr.translate(tcell.NewEventFocus(true))
	if len(got) != 1 || got[0].Type != events.EventFocusGained {
		t.Fatalf("focus gained: got %+v", got)
	}
	got = tr.translate(tcell.NewEventFocus(false))
	if len(got) != 1 || got[0].Type != events.EventFocusLost {
		t.Fatalf("focus lost: got %+v", got)
	}
}
