package blob

import "time"

type filterMode int

const (
	filterAll filterMode = iota
	filterSince
	filterExact
	filterRange
)

// DateFilter selects listing records by their UTC calendar date. It is a
// tagged variant (all, since, exact day, inclusive range) evaluated by a
// single pure predicate. The zero value matches every record.
type DateFilter struct {
	mode  filterMode
	start time.Time
	end   time.Time
}

// FilterAll matches every record, dated or not.
func FilterAll() DateFilter {
	return DateFilter{mode: filterAll}
}

// FilterSince matches records modified on or after cutoff (YYYY-MM-DD).
func FilterSince(cutoff string) (DateFilter, error) {
	day, err := ParseDay(cutoff)
	if err != nil {
		return DateFilter{}, err
	}
	return DateFilter{mode: filterSince, start: day}, nil
}

// FilterExact matches records modified on exactly the given UTC day
// (YYYY-MM-DD).
func FilterExact(day string) (DateFilter, error) {
	d, err := ParseDay(day)
	if err != nil {
		return DateFilter{}, err
	}
	return DateFilter{mode: filterExact, start: d}, nil
}

// FilterRange matches records modified between start and end inclusive,
// both YYYY-MM-DD. The range must not be inverted.
func FilterRange(start, end string) (DateFilter, error) {
	s, err := ParseDay(start)
	if err != nil {
		return DateFilter{}, err
	}
	e, err := ParseDay(end)
	if err != nil {
		return DateFilter{}, err
	}
	if e.Before(s) {
		return DateFilter{}, validationErrorf("end date %s must be the same as or after start date %s", end, start)
	}
	return DateFilter{mode: filterRange, start: s, end: e}, nil
}

// Scoped reports whether the filter is date-scoped, i.e. anything but the
// all-records filter.
func (f DateFilter) Scoped() bool {
	return f.mode != filterAll
}

// Matches reports whether the record passes the filter. Records without a
// parseable timestamp pass only the all-records filter.
func (f DateFilter) Matches(r Record) bool {
	if f.mode == filterAll {
		return true
	}

	day, ok := r.ModifiedDate()
	if !ok {
		return false
	}

	switch f.mode {
	case filterSince:
		return !day.Before(f.start)
	case filterExact:
		return day.Equal(f.start)
	case filterRange:
		return !day.Before(f.start) && !day.After(f.end)
	}
	return false
}

// Apply returns the records that pass the filter, preserving input order.
func (f DateFilter) Apply(records []Record) []Record {
	if f.mode == filterAll {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
