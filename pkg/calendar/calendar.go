// Package calendar provides pure month-grid math for the habit calendar.
package calendar

import (
	"time"

	"tableflip.dev/bithab/pkg/datekey"
)

// Month identifies a calendar month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// Of normalizes an arbitrary year/month pair, so Of(2025, 13) is
// January 2026 and Of(2025, 0) is December 2024.
func Of(year, month int) Month {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// At returns the month containing t.
func At(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following month.
func (m Month) Next() Month {
	return Of(m.Year, int(m.Month)+1)
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return Of(m.Year, int(m.Month)-1)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.first().AddDate(0, 1, -1).Day()
}

// Contains reports whether the keyed day falls inside the month.
func (m Month) Contains(k datekey.Key) bool {
	t := k.Time()
	return t.Year() == m.Year && t.Month() == m.Month
}

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// String renders like "June 2025".
func (m Month) String() string {
	return m.first().Format("January 2006")
}

// DayCell is one cell of a month grid.
type DayCell struct {
	Key     datekey.Key
	Day     int
	InMonth bool
}

// Cells is the fixed grid size: six full weeks keep the layout stable across
// months, and the padding cells carry real neighboring-month dates so logged
// days stay visible across month boundaries.
const Cells = 6 * 7

// Grid lays the month out as 42 day cells. The grid starts on the Sunday on
// or before the 1st (weekday 0 is Sunday) and runs six full weeks.
func Grid(m Month) []DayCell {
	first := m.first()
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]DayCell, 0, Cells)
	for i := 0; i < Cells; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Key:     datekey.Format(d),
			Day:     d.Day(),
			InMonth: d.Year() == m.Year && d.Month() == m.Month,
		})
	}
	return cells
}
