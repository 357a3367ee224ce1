package tcelldrv

import (
	"github.com/gdamore/tcell/v2"

	"conbox/internal/events"
)

// translator converts tcell events into backend-neutral console
// events. Mouse button edges are derived by diffing against the
// previous button mask, the way tcell consumers usually do.
type translator struct {
	prevButtons tcell.ButtonMask
}

func (t *translator) translate(tev tcell.Event) []events.Event {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		if out, ok := translateKey(ev); ok {
			return []events.Event{out}
		}
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return []events.Event{{Type: events.EventWindowResized, Width: w, Height: h}}
	case *tcell.EventFocus:
		if ev.Focused {
			return []events.Event{{Type: events.EventFocusGained}}
		}
		return []events.Event{{Type: events.EventFocusLost}}
	}
	return nil
}

func translateKey(ev *tcell.EventKey) (events.Event, bool) {
	mod := events.Modifier(0)
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= events.ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= events.ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= events.ModShift
	}

	key := func(sym events.Key) (events.Event, bool) {
		return events.Event{Type: events.EventKeyDown, Key: events.KeyEvent{Sym: sym, Mod: mod}}, true
	}

	switch k := ev.Key(); k {
	case tcell.KeyEnter:
		return key(events.KeyReturn)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key(events.KeyBackspace)
	case tcell.KeyTab:
		return key(events.KeyTab)
	case tcell.KeyEsc:
		return key(events.KeyEscape)
	case tcell.KeyUp:
		return key(events.KeyUp)
	case tcell.KeyDown:
		return key(events.KeyDown)
	case tcell.KeyLeft:
		return key(events.KeyLeft)
	case tcell.KeyRight:
		return key(events.KeyRight)
	case tcell.KeyHome:
		return key(events.KeyHome)
	case tcell.KeyEnd:
		return key(events.KeyEnd)
	case tcell.KeyPgUp:
		return key(events.KeyPageUp)
	case tcell.KeyPgDn:
		return key(events.KeyPageDown)
	case tcell.KeyRune:
		if mod&(events.ModCtrl|events.ModAlt) != 0 {
			return events.Event{Type: events.EventKeyDown, Key: events.KeyEvent{Sym: events.KeyRune, Rune: ev.Rune(), Mod: mod}}, true
		}
		// 无修饰的可打印字符走文本输入通道。
		return events.Event{Type: events.EventTextInput, Text: string(ev.Rune())}, true
	default:
		// 终端把 Ctrl-字母 编码成独立键码，折回 KeyRune + Ctrl。
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + k - tcell.KeyCtrlA)
			return events.Event{Type: events.EventKeyDown, Key: events.KeyEvent{Sym: events.KeyRune, Rune: r, Mod: mod | events.ModCtrl}}, true
		}
	}
	return events.Event{}, false
}

func (t *translator) translateMouse(ev *tcell.EventMouse) []events.Event {
	x, y := ev.Position()
	buttons := ev.Buttons()

	// 滚轮掩码单独处理，不改按钮状态，免得打断拖拽。
	if wheel := wheelDelta(buttons); wheel != 0 {
		return []events.Event{{Type: events.EventMouseWheel, Wheel: wheel, Mouse: events.MouseEvent{X: x, Y: y}}}
	}

	prev := t.prevButtons
	t.prevButtons = buttons

	var out []events.Event
	for _, b := range []struct {
		mask tcell.ButtonMask
		btn  events.MouseButton
	}{
		{tcell.Button1, events.ButtonLeft},
		{tcell.Button2, events.ButtonRight},
		{tcell.Button3, events.ButtonMiddle},
	} {
		pressed := buttons&b.mask != 0
		was := prev&b.mask != 0
		switch {
		case pressed && !was:
			out = append(out, events.Event{Type: events.EventMouseButtonDown, Mouse: events.MouseEvent{X: x, Y: y, Button: b.btn}})
		case !pressed && was:
			out = append(out, events.Event{Type: events.EventMouseButtonUp, Mouse: events.MouseEvent{X: x, Y: y, Button: b.btn}})
		}
	}
	if len(out) == 0 {
		out = append(out, events.Event{Type: events.EventMouseMotion, Mouse: events.MouseEvent{X: x, Y: y}})
	}
	return out
}

func wheelDelta(mask tcell.ButtonMask) int {
	d := 0
	if mask&tcell.WheelUp != 0 {
		d++
	}
	if mask&tcell.WheelDown != 0 {
		d--
	}
	return d
}
