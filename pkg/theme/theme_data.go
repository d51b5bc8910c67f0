// Package theme holds the color palette and text styles shared by
// termdrift applications.
package theme

import (
	"sync/atomic"

	"github.com/go-drift/termdrift/pkg/render"
)

// Brightness is the overall tone of a theme.
type Brightness int

const (
	BrightnessDark Brightness = iota
	BrightnessLight
)

func (b Brightness) String() string {
	if b == BrightnessLight {
		return "light"
	}
	return "dark"
}

// ColorScheme is a terminal palette.
type ColorScheme struct {
	Primary   render.Color
	OnSurface render.Color
	Muted     render.Color
	Border    render.Color
	Error     render.Color
	OnError   render.Color
}

// DarkColorScheme is the palette for dark terminal backgrounds.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   render.Hex("#5fafff"),
		OnSurface: render.ColorDefault,
		Muted:     render.Hex("#808080"),
		Border:    render.Hex("#5f5f87"),
		Error:     render.Hex("#d70000"),
		OnError:   render.ColorWhite,
	}
}

// LightColorScheme is the palette for light terminal backgrounds.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   render.Hex("#005fd7"),
		OnSurface: render.ColorDefault,
		Muted:     render.Hex("#6c6c6c"),
		Border:    render.Hex("#8787af"),
		Error:     render.Hex("#af0000"),
		OnError:   render.ColorWhite,
	}
}

// TextTheme is the set of text styles derived from a ColorScheme.
type TextTheme struct {
	Title   render.Style
	Body    render.Style
	Caption render.Style
}

// DefaultTextTheme derives text styles from colors.
func DefaultTextTheme(colors ColorScheme) TextTheme {
	return TextTheme{
		Title:   render.DefaultStyle.Foreground(colors.Primary).Bold(),
		Body:    render.DefaultStyle.Foreground(colors.OnSurface),
		Caption: render.Style{FG: colors.Muted, Attrs: render.AttrDim},
	}
}

// ThemeData contains all theme configuration for an application.
type ThemeData struct {
	ColorScheme ColorScheme
	TextTheme   TextTheme
	Brightness  Brightness
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	colors := DarkColorScheme()
	return &ThemeData{ColorScheme: colors, TextTheme: DefaultTextTheme(colors), Brightness: BrightnessDark}
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	colors := LightColorScheme()
	return &ThemeData{ColorScheme: colors, TextTheme: DefaultTextTheme(colors), Brightness: BrightnessLight}
}

// ForBrightness returns the default theme of the given tone.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessLight {
		return DefaultLightTheme()
	}
	return DefaultDarkTheme()
}

// BorderStyle is the style outlines are drawn with.
func (t *ThemeData) BorderStyle() render.Style {
	return render.DefaultStyle.Foreground(t.ColorScheme.Border)
}

// ErrorStyle is the style of error banners.
func (t *ThemeData) ErrorStyle() render.Style {
	return render.DefaultStyle.Foreground(t.ColorScheme.OnError).Background(t.ColorScheme.Error).Bold()
}

var current atomic.Pointer[ThemeData]

func init() {
	current.Store(DefaultDarkTheme())
}

// Current returns the application theme.
func Current() *ThemeData {
	return current.Load()
}

// Set replaces the application theme. Pass nil to restore the dark
// default.
func Set(t *ThemeData) {
	if t == nil {
		t = DefaultDarkTheme()
	}
	current.Store(t)
}
