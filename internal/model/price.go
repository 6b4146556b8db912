package model

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Price formatting defaults: Indonesian grouping with a rupiah prefix.
const (
	DefaultLocale         = "id-ID"
	DefaultCurrencyPrefix = "Rp "
)

// PriceFormatter renders integer amounts with a locale's digit grouping
// and a fixed currency prefix.
type PriceFormatter struct {
	prefix  string
	printer *message.Printer
}

// NewPriceFormatter returns a formatter for the given BCP 47 locale.
func NewPriceFormatter(locale, prefix string) (*PriceFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &PriceFormatter{
		prefix:  prefix,
		printer: message.NewPrinter(tag),
	}, nil
}

// Format renders amount, e.g. 50000 -> "Rp 50.000" for id-ID.
func (f *PriceFormatter) Format(amount int64) string {
	return f.prefix + f.printer.Sprintf("%d", amount)
}

var defaultFormatter = &PriceFormatter{
	prefix:  DefaultCurrencyPrefix,
	printer: message.NewPrinter(language.MustParse(DefaultLocale)),
}

// FormatPrice renders amount with the default locale and currency prefix.
func FormatPrice(amount int64) string {
	return defaultFormatter.Format(amount)
}
