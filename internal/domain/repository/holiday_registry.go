package repository

// HolidayRegistry supplies the public-holiday dates used to build a
// calendar, keyed by year with ISO date strings. Loaded once per calendar
// construction; edits to the backing store take effect on the next load.
type HolidayRegistry interface {
	Load() (map[int][]string, error)
}
