package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// seasonTheme follows the dark/light base theme with a purple accent.
type seasonTheme struct {
	mode    string
	compact bool
}

func makeTheme(mode string, compact bool) fyne.Theme { return &seasonTheme{mode: mode, compact: compact} }

func (t *seasonTheme) base() fyne.Theme {
	if t.mode == "light" {
		return theme.LightTheme()
	}
	return theme.DarkTheme()
}

func (t *seasonTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	isDark := t.mode != "light"

	switch n {
	case theme.ColorNamePrimary:
		return color.NRGBA{130, 71, 229, 255}
	case theme.ColorNameForeground:
		if isDark {
			return color.NRGBA{240, 240, 240, 255}
		}
		return color.NRGBA{0, 0, 0, 255}
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		if isDark {
			return color.NRGBA{200, 200, 200, 255}
		}
		return color.NRGBA{90, 90, 90, 255}
	}
	return t.base().Color(n, v)
}

func (t *seasonTheme) Font(style fyne.TextStyle) fyne.Resource { return t.base().Font(style) }
func (t *seasonTheme) Icon(n fyne.ThemeIconName) fyne.Resource { return t.base().Icon(n) }
func (t *seasonTheme) Size(n fyne.ThemeSizeName) float32 {
	base := t.base().Size(n)
	if t.compact {
		switch n {
		case theme.SizeNameText:
			return base * 0.95
		case theme.SizeNamePadding:
			return base * 0.85
		}
	}
	return base
}
