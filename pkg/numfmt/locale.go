package numfmt

import (
	"fmt"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localeProbe has a grouped integer part and a fractional part, so printing it
// through a locale printer reveals both separators.
const localeProbe = 12345.5

// ForLocale derives the separators CLDR assigns to tag.
func ForLocale(tag language.Tag) (NumberFormat, error) {
	p := message.NewPrinter(tag)
	rendered := p.Sprintf("%.1f", localeProbe)

	var seps []rune
	for _, r := range rendered {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}

	var f NumberFormat
	switch len(seps) {
	case 1:
		// locale without grouping at this magnitude
		f.Decimal = seps[0]
		f.Grouping = '.'
		if f.Decimal == '.' {
			f.Grouping = ','
		}
	case 2:
		f.Grouping, f.Decimal = seps[0], seps[1]
	default:
		return Default, fmt.Errorf("cannot derive separators for %s from %q", tag, rendered)
	}
	if err := f.Validate(); err != nil {
		return Default, fmt.Errorf("locale %s: %w", tag, err)
	}
	return f, nil
}

// ParseLocale resolves a BCP 47 tag such as "pt-BR" or "en-US".
func ParseLocale(s string) (NumberFormat, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Default, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return ForLocale(tag)
}
