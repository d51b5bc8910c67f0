package theme

import (
	"testing"

	"github.com/go-drift/termdrift/pkg/render"
)

func TestDefaults(t *testing.T) {
	dark := DefaultDarkTheme()
	if dark.Brightness != BrightnessDark || dark.Brightness.String() != "dark" {
		t.Errorf("dark brightness = %v", dark.Brightness)
	}
	if !dark.TextTheme.Title.Has(render.AttrBold) {
		t.Error("title should be bold")
	}
	if dark.TextTheme.Title.FG != dark.ColorScheme.Primary {
		t.Error("title should use the primary color")
	}

	light := ForBrightness(BrightnessLight)
	if light.Brightness.String() != "light" {
		t.Errorf("light brightness = %v", light.Brightness)
	}
	if light.ColorScheme.Primary == dark.ColorScheme.Primary {
		t.Error("light and dark share a primary color")
	}
}

func TestErrorStyle(t *testing.T) {
	st := DefaultDarkTheme().ErrorStyle()
	if st.BG != DarkColorScheme().Error || st.FG != render.ColorWhite || !st.Has(render.AttrBold) {
		t.Errorf("error style = %+v", st)
	}
}

func TestSetCurrent(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	if Current().Brightness != BrightnessDark {
		t.Fatal("default theme should be dark")
	}
	Set(DefaultLightTheme())
	if Current().Brightness != BrightnessLight {
		t.Error("Set did not replace the theme")
	}
	Set(nil)
	if Current().Brightness != BrightnessDark {
		t.Error("Set(nil) did not restore the default")
	}
}
