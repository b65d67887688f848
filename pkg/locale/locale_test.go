package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForLanguage(t *testing.T) {
	for _, lang := range []string{"", "de", "de-DE"} {
		l, err := ForLanguage(lang)
		require.NoError(t, err)
		assert.Equal(t, "de", l.Language)
	}

	_, err := ForLanguage("fr")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		date string
		want string
	}{
		{"2024-01-15", "Montag, 15. Januar 2024"},
		{"2024-03-03", "Sonntag, 3. März 2024"},
		{"2025-12-31", "Mittwoch, 31. Dezember 2025"},
	}
	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			got, err := German().FormatDate(tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	_, err := German().FormatDate("15.01.2024")
	assert.Error(t, err)
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "Mai 2026", German().MonthTitle(2026, time.May))
}

func TestGerman_ReturnsIndependentValues(t *testing.T) {
	l := German()
	l.Today = "Today"
	l.MonthNames[0] = "January"
	assert.Equal(t, "Heute", German().Today)
	assert.Equal(t, "Januar", German().MonthNames[0])
}
