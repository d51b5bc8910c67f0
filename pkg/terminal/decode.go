package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/termdrift/pkg/input"
)

var keyCodes = map[tcell.Key]input.KeyCode{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBacktab:    input.KeyBacktab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyCtrlC:      input.KeyCtrlC,
}

func modifiers(m tcell.ModMask) input.Modifier {
	var out input.Modifier
	if m&tcell.ModShift != 0 {
		out |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= input.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= input.ModAlt
	}
	return out
}

func buttons(b tcell.ButtonMask) input.MouseButton {
	var out input.MouseButton
	if b&tcell.ButtonPrimary != 0 {
		out |= input.ButtonLeft
	}
	if b&tcell.ButtonMiddle != 0 {
		out |= input.ButtonMiddle
	}
	if b&tcell.ButtonSecondary != 0 {
		out |= input.ButtonRight
	}
	if b&tcell.WheelUp != 0 {
		out |= input.WheelUp
	}
	if b&tcell.WheelDown != 0 {
		out |= input.WheelDown
	}
	return out
}

// Decoder turns tcell events into input events. Bracketed paste arrives
// from tcell as a start marker, a run of key events and an end marker; the
// decoder folds them into one input.Paste. A Decoder is not safe for
// concurrent use.
type Decoder struct {
	pasting bool
	paste   strings.Builder
}

// Decode converts ev. It reports false for events with no input
// equivalent and for key events swallowed by a paste in progress.
func (d *Decoder) Decode(ev tcell.Event) (any, bool) {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		if ev.Start() {
			d.pasting = true
			d.paste.Reset()
			return nil, false
		}
		d.pasting = false
		return input.Paste{Text: d.paste.String()}, true
	case *tcell.EventKey:
		if d.pasting {
			switch ev.Key() {
			case tcell.KeyRune:
				d.paste.WriteRune(ev.Rune())
			case tcell.KeyEnter:
				d.paste.WriteByte('\n')
			case tcell.KeyTab:
				d.paste.WriteByte('\t')
			}
			return nil, false
		}
		return decodeKey(ev), true
	case *tcell.EventResize:
		w, h := ev.Size()
		return input.Resize{Width: w, Height: h}, true
	case *tcell.EventMouse:
		x, y := ev.Position()
		return input.Mouse{X: x, Y: y, Buttons: buttons(ev.Buttons()), Mod: modifiers(ev.Modifiers())}, true
	case *tcell.EventFocus:
		return input.Focus{Gained: ev.Focused}, true
	}
	return nil, false
}

func decodeKey(ev *tcell.EventKey) input.Key {
	mod := modifiers(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		return input.Key{Code: input.KeyRune, Rune: ev.Rune(), Mod: mod}
	}
	if code, ok := keyCodes[ev.Key()]; ok {
		if code == input.KeyBacktab {
			mod |= input.ModShift
		}
		return input.Key{Code: code, Mod: mod}
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return input.Key{Code: input.KeyRune, Rune: rune('a' + ev.Key() - tcell.KeyCtrlA), Mod: mod | input.ModCtrl}
	}
	return input.Key{Code: input.KeyRune, Rune: ev.Rune(), Mod: mod}
}
