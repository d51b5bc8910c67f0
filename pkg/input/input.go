// Package input defines the typed events delivered to components.
//
// Each event kind is its own Go type so that handlers registered with
// core.On receive only the kind they asked for.
package input

import (
	"fmt"
	"strings"
	"time"
)

// KeyCode identifies a non-printable key. Printable characters use KeyRune.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyCtrlC
)

var keyNames = map[KeyCode]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyInsert:    "insert",
	KeyCtrlC:     "ctrl+c",
}

// String returns the key's short name.
func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a key press.
type Key struct {
	Code KeyCode
	// Rune is set when Code is KeyRune.
	Rune rune
	Mod  Modifier
}

// Char returns the key event for a printable rune.
func Char(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Press returns the key event for a named key.
func Press(code KeyCode) Key {
	return Key{Code: code}
}

// Is reports whether k is the given named key, ignoring modifiers.
func (k Key) Is(code KeyCode) bool {
	return k.Code == code
}

// IsRune reports whether k is the printable rune r.
func (k Key) IsRune(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

// String formats k like "ctrl+alt+x" or "shift+tab".
func (k Key) String() string {
	var parts []string
	if k.Mod&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if k.Mod&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if k.Mod&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if k.Code == KeyRune {
		parts = append(parts, string(k.Rune))
	} else {
		parts = append(parts, k.Code.String())
	}
	return strings.Join(parts, "+")
}

// Resize reports a new terminal size.
type Resize struct {
	Width, Height int
}

// MouseButton is a bit set of pressed buttons.
type MouseButton uint8

const (
	ButtonNone MouseButton = 0
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	WheelUp
	WheelDown
)

// Mouse is a mouse press, release, motion or wheel event.
type Mouse struct {
	X, Y    int
	Buttons MouseButton
	Mod     Modifier
}

// Paste carries bracketed-paste text.
type Paste struct {
	Text string
}

// Focus reports the terminal window gaining or losing focus.
type Focus struct {
	Gained bool
}

// Tick is emitted by the engine once per frame interval.
type Tick struct {
	Frame uint64
	At    time.Time
}
