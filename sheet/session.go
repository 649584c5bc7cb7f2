package sheet

import (
	"github.com/swisscomeventandmedia/openspout/config"
	"github.com/swisscomeventandmedia/openspout/options"
	"github.com/swisscomeventandmedia/openspout/style"
)

// Session binds the per-writer state pair: one style registry and one option
// store. Every write of a document constructs its own session; nothing here
// is shared between concurrent writers.
type Session struct {
	Styles  style.Registrar
	Options *options.Store

	fonts *style.FontRegistry // non-nil only for font-tracking formats
}

// NewSession creates session state for the configured output format. Formats
// that emit a consolidated font table get a font-tracking registry, the rest
// a plain one.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		Options: options.ForFormat(cfg.Writer.Format, cfg.Writer),
	}
	if cfg.Writer.Format.NeedsFontTable() {
		s.fonts = style.NewFontRegistry()
		s.Styles = s.fonts
	} else {
		s.Styles = style.NewRegistry()
	}
	return s
}

// UsedFonts returns the distinct font names registered so far, or nil when
// the format does not track fonts.
func (s *Session) UsedFonts() []string {
	if s.fonts == nil {
		return nil
	}
	return s.fonts.UsedFonts()
}

// DefaultStyle builds the style rows fall back to, from the configured
// writer defaults.
func DefaultStyle(w config.WriterConfig) *style.Style {
	return style.NewBuilder().
		FontName(w.DefaultFontName).
		FontSize(w.DefaultFontSize).
		Build()
}
