package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_Valid(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Hour)
	assert.Equal(t, 30, c.Minute)
	assert.Equal(t, "09:30", c.String())
}

func TestParseClock_Midnight(t *testing.T) {
	c, err := ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Minutes())
}

func TestParseClock_OutOfRange(t *testing.T) {
	_, err := ParseClock("24:00")
	assert.Error(t, err)

	_, err = ParseClock("12:60")
	assert.Error(t, err)
}

func TestParseClock_Garbage(t *testing.T) {
	_, err := ParseClock("lunchtime")
	assert.Error(t, err)
}

func TestSpanMinutes_SameDay(t *testing.T) {
	span := SpanMinutes(MustParseClock("09:00"), MustParseClock("17:00"))
	assert.Equal(t, 480, span)
}

func TestSpanMinutes_Overnight(t *testing.T) {
	// 22:00 to 02:00 rolls over midnight
	span := SpanMinutes(MustParseClock("22:00"), MustParseClock("02:00"))
	assert.Equal(t, 240, span)
}

func TestSpanMinutes_FullDay(t *testing.T) {
	// Equal start and end is a 24 hour span, not zero
	span := SpanMinutes(MustParseClock("10:00"), MustParseClock("10:00"))
	assert.Equal(t, 1440, span)
}

func TestIntervalsOverlap_Overlapping(t *testing.T) {
	overlap := IntervalsOverlap(
		MustParseClock("09:00"), MustParseClock("17:00"),
		MustParseClock("15:00"), MustParseClock("23:00"))
	assert.True(t, overlap)
}

func TestIntervalsOverlap_BackToBack(t *testing.T) {
	// A shift ending exactly when another starts does not overlap
	overlap := IntervalsOverlap(
		MustParseClock("09:00"), MustParseClock("17:00"),
		MustParseClock("17:00"), MustParseClock("22:00"))
	assert.False(t, overlap)
}

func TestIntervalsOverlap_OvernightAgainstMorning(t *testing.T) {
	// 22:00-02:00 normalizes past midnight and should not clash with a
	// morning shift on the same date
	overlap := IntervalsOverlap(
		MustParseClock("22:00"), MustParseClock("02:00"),
		MustParseClock("08:00"), MustParseClock("12:00"))
	assert.False(t, overlap)
}

func TestIntervalsOverlap_OvernightAgainstEvening(t *testing.T) {
	overlap := IntervalsOverlap(
		MustParseClock("22:00"), MustParseClock("02:00"),
		MustParseClock("20:00"), MustParseClock("23:00"))
	assert.True(t, overlap)
}

func TestWeekStart_MidWeek(t *testing.T) {
	// Thursday 2026-02-12 belongs to the week of Monday 2026-02-09
	thursday := time.Date(2026, 2, 12, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-09", FormatDate(WeekStart(thursday)))
}

func TestWeekStart_Sunday(t *testing.T) {
	// Sunday rolls back six days, not forward
	sunday := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-09", FormatDate(WeekStart(sunday)))
}

func TestWeekStart_MondayIsFixpoint(t *testing.T) {
	monday := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, WeekStart(monday))
}

func TestIsMonday(t *testing.T) {
	assert.True(t, IsMonday(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsMonday(time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)))
}

func TestDateForWeekday(t *testing.T) {
	weekStart := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-09", FormatDate(DateForWeekday(weekStart, time.Monday)))
	assert.Equal(t, "2026-02-13", FormatDate(DateForWeekday(weekStart, time.Friday)))
	assert.Equal(t, "2026-02-15", FormatDate(DateForWeekday(weekStart, time.Sunday)))
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2026-02-09")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-09", FormatDate(d))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("09/02/2026")
	assert.Error(t, err)
}
