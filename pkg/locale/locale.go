package locale

import (
	"fmt"
	"time"
)

// Locale holds the names used when rendering dates. It is passed explicitly
// to whatever renders dates; there is no package level default to mutate.
type Locale struct {
	Language      string
	MonthNames    [12]string
	DayNames      [7]string // indexed by time.Weekday, Sunday first
	DayNamesShort [7]string
	Today         string
}

// German returns the German locale.
func German() Locale {
	return Locale{
		Language: "de",
		MonthNames: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		DayNames:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		DayNamesShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		Today:         "Heute",
	}
}

// ForLanguage returns the locale for a language code. Only German is shipped.
func ForLanguage(language string) (Locale, error) {
	switch language {
	case "", "de", "de-DE":
		return German(), nil
	}
	return Locale{}, fmt.Errorf("unsupported locale language %q", language)
}

// FormatDate renders a YYYY-MM-DD date, e.g. "Montag, 15. Januar 2024".
func (l Locale) FormatDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return fmt.Sprintf("%s, %d. %s %d", l.DayNames[t.Weekday()], t.Day(), l.MonthNames[t.Month()-1], t.Year()), nil
}

// MonthTitle renders the header of a month page, e.g. "Januar 2024".
func (l Locale) MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", l.MonthNames[month-1], year)
}
