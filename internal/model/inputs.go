package model

import "time"

const dateLayout = "2006-01-02"

// Provider reporting lag and window used for the trailing-year analysis.
const (
	ArchiveLagDays    = 2
	TrailingYearDays  = 365
	trailingStartDays = TrailingYearDays + ArchiveLagDays
)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TrailingYear returns today-367d through today-2d.
func TrailingYear(now time.Time) DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: today.AddDate(0, 0, -trailingStartDays),
		End:   today.AddDate(0, 0, -ArchiveLagDays),
	}
}

// ParseDateRange parses YYYY-MM-DD bounds.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return DateRange{}, inputErr("start_date", "expected YYYY-MM-DD: %v", err)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return DateRange{}, inputErr("end_date", "expected YYYY-MM-DD: %v", err)
	}
	r := DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return inputErr("date_range", "start and end are required")
	}
	if r.Start.After(r.End) {
		return inputErr("date_range", "start %s is after end %s", r.StartString(), r.EndString())
	}
	return nil
}

// Days is the number of calendar dates in the range (inclusive).
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Hours is the expected number of hourly samples for the range.
func (r DateRange) Hours() int {
	return r.Days() * 24
}

func (r DateRange) StartString() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndString() string   { return r.End.Format(dateLayout) }

// AnalysisInputs bundles everything supplied once per analysis request.
type AnalysisInputs struct {
	Location Location     `json:"location"`
	System   SystemParams `json:"system"`
	Range    DateRange    `json:"range"`
}

func (in AnalysisInputs) Validate() error {
	if err := in.Location.Validate(); err != nil {
		return err
	}
	if err := in.System.Validate(); err != nil {
		return err
	}
	return in.Range.Validate()
}
