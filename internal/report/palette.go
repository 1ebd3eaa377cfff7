package report

import (
	"github.com/fatih/color"

	"github.com/nao1215/parasort/internal/model"
)

// Palette maps categories and message kinds to terminal colors.
//
// Design decision: fatih/color keeps a package level NoColor switch. We
// never touch it; every color of a Palette is enabled or disabled on the
// instance, so a --no-color run cannot leak into another Palette.
type Palette struct {
	categories map[string]*color.Color
	fallback   *color.Color

	header  *color.Color
	value   *color.Color
	success *color.Color
	warning *color.Color
	failure *color.Color
	muted   *color.Color
}

// NewPalette creates a Palette. When enabled is false every method returns
// its text unchanged.
func NewPalette(enabled bool) *Palette {
	newColor := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}

	return &Palette{
		categories: map[string]*color.Color{
			"sqli":                  newColor(color.FgRed),
			"xss":                   newColor(color.FgYellow),
			"ssrf":                  newColor(color.FgCyan),
			"lfi":                   newColor(color.FgMagenta),
			"open_redirect":         newColor(color.FgBlue),
			"command_injection":     newColor(color.FgRed),
			"auth_bypass":           newColor(color.FgHiRed),
			"business_logic":        newColor(color.FgHiYellow),
			"info_disclosure":       newColor(color.FgHiCyan),
			"custom-params":         newColor(color.FgHiMagenta),
			model.UncategorizedName: newColor(color.FgHiBlack),
		},
		fallback: newColor(color.FgWhite),
		header:   newColor(color.FgCyan),
		value:    newColor(color.FgYellow),
		success:  newColor(color.FgGreen),
		warning:  newColor(color.FgYellow),
		failure:  newColor(color.FgRed),
		muted:    newColor(color.FgHiBlack),
	}
}

// Category colors text with the color of category. Categories added by the
// user get a neutral color.
func (p *Palette) Category(category, text string) string {
	if c, ok := p.categories[category]; ok {
		return c.Sprint(text)
	}
	return p.fallback.Sprint(text)
}

// Header colors section titles and rules.
func (p *Palette) Header(text string) string { return p.header.Sprint(text) }

// Value colors figures.
func (p *Palette) Value(text string) string { return p.value.Sprint(text) }

// Success colors completion messages.
func (p *Palette) Success(text string) string { return p.success.Sprint(text) }

// Warning colors recoverable problems.
func (p *Palette) Warning(text string) string { return p.warning.Sprint(text) }

// Failure colors errors.
func (p *Palette) Failure(text string) string { return p.failure.Sprint(text) }

// Muted colors secondary text such as parameter previews.
func (p *Palette) Muted(text string) string { return p.muted.Sprint(text) }
