package ledger

import (
	"bytes"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Period selects transactions by calendar month and year. Zero means "all".
type Period struct {
	Month int
	Year  int
}

// AllTime matches every transaction.
func AllTime() Period {
	return Period{}
}

// ParsePeriod reads a month and year where either may be "all" or empty.
func ParsePeriod(month, year string) (Period, error) {
	var p Period

	if m := strings.TrimSpace(month); m != "" && !strings.EqualFold(m, "all") {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			return Period{}, &ValidationError{Field: "month", Message: "month must be 1-12 or all"}
		}
		p.Month = v
	}

	if y := strings.TrimSpace(year); y != "" && !strings.EqualFold(y, "all") {
		v, err := strconv.Atoi(y)
		if err != nil || v < 1 {
			return Period{}, &ValidationError{Field: "year", Message: "year must be a positive number or all"}
		}
		p.Year = v
	}

	return p, nil
}

// Contains reports whether the date falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if p.Month != 0 && int(t.Month()) != p.Month {
		return false
	}
	if p.Year != 0 && t.Year() != p.Year {
		return false
	}
	return true
}

// StatusView selects which approval states are shown.
type StatusView string

const (
	// ViewDefault shows Approved and Pending entries.
	ViewDefault     StatusView = "default"
	ViewPendingOnly StatusView = "pending"
	ViewAll         StatusView = "all"
)

// ParseStatusView accepts the view names; empty means ViewDefault.
func ParseStatusView(s string) (StatusView, error) {
	switch StatusView(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewDefault:
		return ViewDefault, nil
	case ViewPendingOnly:
		return ViewPendingOnly, nil
	case ViewAll:
		return ViewAll, nil
	}
	return "", &ValidationError{Field: "view", Message: "view must be default, pending or all"}
}

func (v StatusView) includes(s Status) bool {
	switch v {
	case ViewPendingOnly:
		return s == StatusPending
	case ViewAll:
		return true
	default:
		return s == StatusApproved || s == StatusPending
	}
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange validates and normalises the bounds to whole days.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, &ValidationError{Field: "range", Message: "start and end are required"}
	}
	r := DateRange{Start: truncateToDay(start), End: truncateToDay(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, &ValidationError{Field: "range", Message: "end must not be before start"}
	}
	return r, nil
}

// Contains reports whether the day of t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	d := truncateToDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Filters combines the ledger view selections. A nil Range disables date filtering.
type Filters struct {
	Period Period
	View   StatusView
	Range  *DateRange
}

// ByPeriod keeps the transactions whose occurrence date lies in p, newest first.
func ByPeriod(txns []Transaction, p Period) []Transaction {
	return selectSorted(txns, func(t Transaction) bool { return p.Contains(t.OccurredAt) })
}

// ByStatusView keeps the transactions visible in view v, newest first.
func ByStatusView(txns []Transaction, v StatusView) []Transaction {
	return selectSorted(txns, func(t Transaction) bool { return v.includes(t.Status) })
}

// ByDateRange keeps the transactions that occurred within r, newest first.
func ByDateRange(txns []Transaction, r DateRange) []Transaction {
	return selectSorted(txns, func(t Transaction) bool { return r.Contains(t.OccurredAt) })
}

// Apply runs every selection in f, newest first.
func Apply(txns []Transaction, f Filters) []Transaction {
	return selectSorted(txns, func(t Transaction) bool {
		if !f.Period.Contains(t.OccurredAt) || !f.View.includes(t.Status) {
			return false
		}
		return f.Range == nil || f.Range.Contains(t.OccurredAt)
	})
}

// SortNewestFirst orders txns in place by occurrence date descending. Ties fall back
// to creation time and then id so that the order is total.
func SortNewestFirst(txns []Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		a, b := txns[i], txns[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID.Bytes(), b.ID.Bytes()) > 0
	})
}

func selectSorted(txns []Transaction, keep func(Transaction) bool) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if keep(t) {
			out = append(out, t)
		}
	}
	SortNewestFirst(out)
	return out
}
