// Package widgets provides the built-in widget library: labels, buttons,
// text input, and the layout containers. All widgets are generic over the
// application data type and read their visual parameters from the
// environment, so a subtree can be restyled with env.Adding.
package widgets

import (
	"github.com/go-keel/keel/pkg/env"
	"github.com/go-keel/keel/pkg/graphics"
)

// Environment keys read by the built-in widgets. Profiles can override
// any of them by name.
var (
	WindowBackground = env.NewKey[graphics.Color]("keel.theme.window-background")
	TextColor        = env.NewKey[graphics.Color]("keel.theme.text-color")
	FontSize         = env.NewKey[float64]("keel.theme.font-size")

	ButtonBackground = env.NewKey[graphics.Color]("keel.theme.button-background")
	ButtonHot        = env.NewKey[graphics.Color]("keel.theme.button-hot")
	ButtonActive     = env.NewKey[graphics.Color]("keel.theme.button-active")
	ButtonPadding    = env.NewKey[graphics.Insets]("keel.theme.button-padding")

	BorderColor = env.NewKey[graphics.Color]("keel.theme.border-color")
	FocusColor  = env.NewKey[graphics.Color]("keel.theme.focus-color")

	TextboxBackground = env.NewKey[graphics.Color]("keel.theme.textbox-background")
	CursorColor       = env.NewKey[graphics.Color]("keel.theme.cursor-color")

	WidgetSpacing = env.NewKey[float64]("keel.theme.widget-spacing")
)

// DefaultEnv returns the environment the built-in widgets are designed
// against: a dark theme with moderate spacing.
func DefaultEnv() env.Env {
	e := env.Empty()
	e = env.Adding(e, WindowBackground, graphics.RGB(0x29, 0x29, 0x29))
	e = env.Adding(e, TextColor, graphics.RGB(0xF0, 0xF0, 0xEA))
	e = env.Adding(e, FontSize, 15.0)
	e = env.Adding(e, ButtonBackground, graphics.RGB(0x3A, 0x3A, 0x3A))
	e = env.Adding(e, ButtonHot, graphics.RGB(0x4A, 0x4A, 0x4A))
	e = env.Adding(e, ButtonActive, graphics.RGB(0x5A, 0x5A, 0x76))
	e = env.Adding(e, ButtonPadding, graphics.Insets{Left: 8, Top: 4, Right: 8, Bottom: 4})
	e = env.Adding(e, BorderColor, graphics.RGB(0x6A, 0x6A, 0x6A))
	e = env.Adding(e, FocusColor, graphics.RGB(0x58, 0x8D, 0xFF))
	e = env.Adding(e, TextboxBackground, graphics.RGB(0x1F, 0x1F, 0x1F))
	e = env.Adding(e, CursorColor, graphics.RGB(0xF0, 0xF0, 0xEA))
	e = env.Adding(e, WidgetSpacing, 8.0)
	return e
}
