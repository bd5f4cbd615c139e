package main

import (
	"fmt"
	"time"

	"github.com/rshep3087/ledgerly/api"
)

const (
	monthlyPeriodType = "month"
	annualPeriodType  = "year"
)

// Period is a calendar month or year, inclusive of both ends.
type Period struct {
	kind  string
	start time.Time
	end   time.Time
}

// newPeriod returns the period of kind containing current, moved by offset
// periods (-1 is the previous one).
func newPeriod(current time.Time, kind string, offset int) (Period, error) {
	p := Period{kind: kind}

	switch kind {
	case monthlyPeriodType:
		p.start = time.Date(current.Year(), current.Month()+time.Month(offset), 1, 0, 0, 0, 0, current.Location())
		p.end = p.start.AddDate(0, 1, 0).Add(-time.Second)
	case annualPeriodType:
		p.start = time.Date(current.Year()+offset, 1, 1, 0, 0, 0, 0, current.Location())
		p.end = p.start.AddDate(1, 0, 0).Add(-time.Second)
	default:
		return p, fmt.Errorf("invalid period: %s (must be %s or %s)", kind, monthlyPeriodType, annualPeriodType)
	}

	return p, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.startDate(), p.endDate())
}

func (p Period) startDate() string {
	return p.start.Format(dateLayout)
}

func (p Period) endDate() string {
	return p.end.Format(dateLayout)
}

// apply narrows filters to the period.
func (p Period) apply(f *api.TransactionFilters) {
	f.StartDate = p.start
	f.EndDate = p.end
}
